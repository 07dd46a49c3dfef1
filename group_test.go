package distribute

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beeracademy/distribute/types"
)

func TestParseGroups(t *testing.T) {
	t.Run("singleton tokens become weight-one groups", func(t *testing.T) {
		weights, classes, err := parseGroups([]string{"a", "b", "c"}, "=", 6)
		require.NoError(t, err)
		require.Equal(t, []int{1, 1, 1}, weights)
		require.Len(t, classes[1], 3)
	})

	t.Run("joined names form one atomic group in encounter order", func(t *testing.T) {
		weights, classes, err := parseGroups([]string{"a=b", "c", "d=e=f"}, "=", 6)
		require.NoError(t, err)
		require.Equal(t, []int{2, 1, 3}, weights)
		require.Equal(t, []string{"a", "b"}, classes[2][0].Names)
		require.Equal(t, []string{"c"}, classes[1][0].Names)
		require.Equal(t, []string{"d", "e", "f"}, classes[3][0].Names)
	})

	t.Run("strips stray commas before splitting", func(t *testing.T) {
		weights, classes, err := parseGroups([]string{"a,=b", "c,"}, "=", 6)
		require.NoError(t, err)
		require.Equal(t, []int{2, 1}, weights)
		require.Equal(t, []string{"a", "b"}, classes[2][0].Names)
		require.Equal(t, []string{"c"}, classes[1][0].Names)
	})

	t.Run("drops empty fragments from doubled or trailing separators", func(t *testing.T) {
		weights, _, err := parseGroups([]string{"a==b", "c="}, "=", 6)
		require.NoError(t, err)
		require.Equal(t, []int{2, 1}, weights)
	})

	t.Run("skips tokens left without any names", func(t *testing.T) {
		weights, _, err := parseGroups([]string{"a", ",", "b"}, "=", 6)
		require.NoError(t, err)
		require.Equal(t, []int{1, 1}, weights)
	})

	t.Run("empty input fails with ErrNoParticipants", func(t *testing.T) {
		_, _, err := parseGroups(nil, "=", 6)
		require.ErrorIs(t, err, types.ErrNoParticipants)
	})

	t.Run("all-degenerate input fails with ErrNoParticipants", func(t *testing.T) {
		_, _, err := parseGroups([]string{",", "="}, "=", 6)
		require.ErrorIs(t, err, types.ErrNoParticipants)
	})

	t.Run("group above capacity fails with ErrGroupTooLarge", func(t *testing.T) {
		_, _, err := parseGroups([]string{"a=b=c=d=e=f=g"}, "=", 6)
		require.ErrorIs(t, err, types.ErrGroupTooLarge)
		require.Contains(t, err.Error(), "7")
		require.Contains(t, err.Error(), "6")
	})
}

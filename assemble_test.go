package distribute

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beeracademy/distribute/types"
)

// noShuffle keeps every weight class in encounter order.
func noShuffle(_ int, _ func(i, j int)) {}

func TestAssemble(t *testing.T) {
	t.Run("pops one class member per assignment slot in order", func(t *testing.T) {
		weights := []int{2, 1, 3}
		classes := map[int][]types.Group{
			1: {{Names: []string{"c"}}},
			2: {{Names: []string{"a", "b"}}},
			3: {{Names: []string{"d", "e", "f"}}},
		}
		assignment := types.Assignment{0, 1, 0}

		buckets := assemble(assignment, weights, classes, noShuffle)

		require.Len(t, buckets, 2)
		require.Equal(t, []string{"a", "b", "d", "e", "f"}, buckets[0].Names())
		require.Equal(t, []string{"c"}, buckets[1].Names())
	})

	t.Run("groups stay atomic regardless of shuffle", func(t *testing.T) {
		weights := []int{2, 2, 1}
		classes := map[int][]types.Group{
			2: {{Names: []string{"a", "b"}}, {Names: []string{"c", "d"}}},
			1: {{Names: []string{"e"}}},
		}
		assignment := types.Assignment{0, 1, 1}

		reverse := func(n int, swap func(i, j int)) {
			for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
				swap(i, j)
			}
		}
		buckets := assemble(assignment, weights, classes, reverse)

		// The reverse shuffle swaps which two-name group fills which slot,
		// but members never split across buckets.
		require.Equal(t, []string{"c", "d"}, buckets[0].Names())
		require.Equal(t, []string{"a", "b", "e"}, buckets[1].Names())
	})

	t.Run("shuffle cannot change bucket sums", func(t *testing.T) {
		weights := []int{2, 2, 2}
		classes := map[int][]types.Group{
			2: {
				{Names: []string{"a", "b"}},
				{Names: []string{"c", "d"}},
				{Names: []string{"e", "f"}},
			},
		}
		assignment := types.Assignment{0, 0, 1}

		buckets := assemble(assignment, weights, classes, noShuffle)
		require.Equal(t, 4, buckets[0].Sum())
		require.Equal(t, 2, buckets[1].Sum())
	})
}

func TestResult_Render(t *testing.T) {
	res := &Result{Buckets: []types.Bucket{
		{Groups: []types.Group{{Names: []string{"a", "b"}}, {Names: []string{"c"}}}},
		{Groups: []types.Group{{Names: []string{"d"}}}},
	}}

	want := "Partitioned players into 2 games:\nGame 1: a, b, c\nGame 2: d\n"
	require.Equal(t, want, res.Render())
}

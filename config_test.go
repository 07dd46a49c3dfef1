package distribute

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 6, cfg.Capacity)
	require.Equal(t, 10*time.Second, cfg.SolveTimeout)
	require.Equal(t, "=", cfg.GroupSeparator)
	require.Equal(t, 256, cfg.CacheSize)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills missing values", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)
		require.Equal(t, 6, cfg.Capacity)
		require.Equal(t, 10*time.Second, cfg.SolveTimeout)
		require.Equal(t, "=", cfg.GroupSeparator)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := Config{Capacity: 4, SolveTimeout: time.Second, GroupSeparator: "+"}
		SetDefaults(&cfg)
		require.Equal(t, 4, cfg.Capacity)
		require.Equal(t, time.Second, cfg.SolveTimeout)
		require.Equal(t, "+", cfg.GroupSeparator)
	})

	t.Run("leaves CacheSize zero so caching can be disabled", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)
		require.Equal(t, 0, cfg.CacheSize)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Capacity: 6, SolveTimeout: time.Second, GroupSeparator: "="}
	require.NoError(t, valid.Validate())

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		cfg := valid
		cfg.Capacity = -1
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects non-positive timeout", func(t *testing.T) {
		cfg := valid
		cfg.SolveTimeout = 0
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects empty separator", func(t *testing.T) {
		cfg := valid
		cfg.GroupSeparator = ""
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects negative cache size", func(t *testing.T) {
		cfg := valid
		cfg.CacheSize = -1
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

package distribute

import (
	"fmt"
	"time"
)

// Config is the configuration for the Engine.
type Config struct {
	// Capacity is the maximum total group size one bucket may hold.
	Capacity int `yaml:"capacity"`

	// SolveTimeout is the wall-clock budget for one partition search.
	// The search is aborted once exceeded and no partial result is returned.
	SolveTimeout time.Duration `yaml:"solveTimeout"`

	// GroupSeparator joins participant names that must stay in the same
	// bucket (e.g. "a=b=c" with separator "=").
	GroupSeparator string `yaml:"groupSeparator"`

	// CacheSize caps the solve-result cache entry count. Zero disables
	// caching; negative values are invalid.
	CacheSize int `yaml:"cacheSize"`
}

// DefaultConfig returns a Config with the reference deployment's defaults.
//
// Returns:
//   - Config: Capacity 6, 10 second solve budget, "=" separator, cache of 256
func DefaultConfig() Config {
	return Config{
		Capacity:       6,
		SolveTimeout:   10 * time.Second,
		GroupSeparator: "=",
		CacheSize:      256,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// CacheSize is left alone: zero is a meaningful value (caching disabled).
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Capacity == 0 {
		cfg.Capacity = defaults.Capacity
	}
	if cfg.SolveTimeout == 0 {
		cfg.SolveTimeout = defaults.SolveTimeout
	}
	if cfg.GroupSeparator == "" {
		cfg.GroupSeparator = defaults.GroupSeparator
	}
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the offending field, or nil
func (cfg *Config) Validate() error {
	if cfg.Capacity <= 0 {
		return fmt.Errorf("%w: Capacity must be > 0, got %d", ErrInvalidConfig, cfg.Capacity)
	}
	if cfg.SolveTimeout <= 0 {
		return fmt.Errorf("%w: SolveTimeout must be > 0, got %v", ErrInvalidConfig, cfg.SolveTimeout)
	}
	if cfg.GroupSeparator == "" {
		return fmt.Errorf("%w: GroupSeparator must not be empty", ErrInvalidConfig)
	}
	if cfg.CacheSize < 0 {
		return fmt.Errorf("%w: CacheSize must be >= 0, got %d", ErrInvalidConfig, cfg.CacheSize)
	}

	return nil
}

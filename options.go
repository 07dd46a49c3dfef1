package distribute

import "math/rand/v2"

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	logger  Logger
	metrics MetricsCollector
	rng     *rand.Rand
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	eng, err := distribute.New(&cfg, distribute.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "distribute")
//	eng, err := distribute.New(&cfg, distribute.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithRand sets the random source used for the cosmetic shuffle of same-size
// groups. The shuffle never affects bucket count or imbalance, only which
// concrete group lands in which slot of its weight class.
//
// By default the process-wide source is used; injecting a seeded source makes
// assembly deterministic, which tests rely on.
//
// Parameters:
//   - rng: Random source (must not be shared with concurrent Distribute calls)
//
// Returns:
//   - Option: Functional option for New
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}

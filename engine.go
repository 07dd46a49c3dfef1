package distribute

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/beeracademy/distribute/internal/logging"
	"github.com/beeracademy/distribute/internal/metrics"
	"github.com/beeracademy/distribute/solver"
	"github.com/beeracademy/distribute/types"
)

// Engine partitions participant tokens into game buckets.
//
// It is safe for concurrent use: every Distribute call owns its own parse and
// search state, and the optional solve-result cache is concurrency-safe.
type Engine struct {
	cfg     Config
	logger  Logger
	metrics MetricsCollector
	cache   *solver.Cache
	shuffle func(n int, swap func(i, j int))
}

// New creates an Engine.
//
// Missing config values are filled with defaults before validation, so a
// zero-value Config is usable.
//
// Parameters:
//   - cfg: Engine configuration (defaults applied in place)
//   - opts: Optional dependencies (logger, metrics, random source)
//
// Returns:
//   - *Engine: Ready-to-use engine
//   - error: ErrInvalidConfig when the configuration is invalid
//
// Example:
//
//	cfg := distribute.DefaultConfig()
//	eng, err := distribute.New(&cfg, distribute.WithLogger(logger))
func New(cfg *Config, opts ...Option) (*Engine, error) {
	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logging.NewSlogDefault()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	e := &Engine{
		cfg:     *cfg,
		logger:  options.logger,
		metrics: options.metrics,
		shuffle: rand.Shuffle,
	}
	if options.rng != nil {
		e.shuffle = options.rng.Shuffle
	}
	if cfg.CacheSize > 0 {
		e.cache = solver.NewCache(cfg.CacheSize)
	}

	return e, nil
}

// Capacity returns the configured maximum total group size per bucket.
func (e *Engine) Capacity() int {
	return e.cfg.Capacity
}

// SolveTimeout returns the configured wall-clock budget for one search.
func (e *Engine) SolveTimeout() time.Duration {
	return e.cfg.SolveTimeout
}

// Distribute partitions the given participant tokens into the fewest buckets
// of the configured capacity, with the smallest spread among them.
//
// The search runs under the configured wall-clock budget; on timeout no
// partial result is surfaced and the engine is unaffected for later calls.
// Both error kinds are terminal for the request -- the engine never retries.
//
// Parameters:
//   - ctx: Context for cancellation (tightened to the solve budget internally)
//   - tokens: One token per participant specifier, names optionally joined by
//     the group separator
//
// Returns:
//   - *Result: Buckets in bucket-open order, ready for rendering
//   - error: ErrNoParticipants or ErrGroupTooLarge before any search,
//     ErrDeadlineExceeded when the budget is exhausted
func (e *Engine) Distribute(ctx context.Context, tokens []string) (*Result, error) {
	weights, classes, err := parseGroups(tokens, e.cfg.GroupSeparator, e.cfg.Capacity)
	if err != nil {
		reason := "group_too_large"
		if errors.Is(err, types.ErrNoParticipants) {
			reason = "no_participants"
		}
		e.metrics.RecordValidationFailure(reason)

		return nil, err
	}

	e.logger.Debug("starting partition search", "groups", len(weights), "capacity", e.cfg.Capacity)

	start := time.Now()
	solved, err := e.solve(ctx, weights)
	if err != nil {
		if errors.Is(err, types.ErrDeadlineExceeded) {
			e.metrics.RecordSolveTimeout(e.cfg.SolveTimeout.Seconds())
			e.logger.Warn("partition search timed out", "groups", len(weights), "budget", e.cfg.SolveTimeout)

			return nil, fmt.Errorf("no optimal partition within %v: %w", e.cfg.SolveTimeout, types.ErrDeadlineExceeded)
		}

		return nil, err
	}

	e.metrics.RecordSolve(time.Since(start).Seconds(), solved.Buckets, solved.Imbalance)
	e.logger.Debug("partition search finished",
		"buckets", solved.Buckets, "imbalance", solved.Imbalance, "elapsed", time.Since(start))

	return &Result{Buckets: assemble(solved.Assignment, weights, classes, e.shuffle)}, nil
}

// solve runs the search as a separately cancellable unit of work under the
// configured budget. The guard gives up the moment the deadline passes; the
// worker goroutine notices the same context shortly after and exits, so
// nothing leaks and nothing of the abandoned search is ever observed.
func (e *Engine) solve(ctx context.Context, weights []int) (types.SolverResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.SolveTimeout)
	defer cancel()

	type outcome struct {
		result types.SolverResult
		hit    bool
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		if e.cache != nil {
			result, hit, err := e.cache.Solve(ctx, weights, e.cfg.Capacity)
			done <- outcome{result: result, hit: hit, err: err}

			return
		}

		result, err := solver.SolveContext(ctx, weights, e.cfg.Capacity)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		if e.cache != nil && out.err == nil {
			e.metrics.RecordCacheLookup(out.hit)
		}

		return out.result, out.err
	case <-ctx.Done():
		return types.SolverResult{}, types.ErrDeadlineExceeded
	}
}

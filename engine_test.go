package distribute

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/beeracademy/distribute/types"
)

// recordingMetrics captures collector calls for assertions.
type recordingMetrics struct {
	mu          sync.Mutex
	solves      int
	timeouts    int
	validations []string
	cacheHits   []bool
}

var _ types.MetricsCollector = (*recordingMetrics)(nil)

func (r *recordingMetrics) RecordSolve(_ float64, _, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solves++
}

func (r *recordingMetrics) RecordSolveTimeout(_ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeouts++
}

func (r *recordingMetrics) RecordValidationFailure(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validations = append(r.validations, reason)
}

func (r *recordingMetrics) RecordCacheLookup(hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cacheHits = append(r.cacheHits, hit)
}

func newTestEngine(t *testing.T, cfg Config, opts ...Option) *Engine {
	t.Helper()

	eng, err := New(&cfg, opts...)
	require.NoError(t, err)

	return eng
}

func TestNew(t *testing.T) {
	t.Run("zero-value config is usable after defaults", func(t *testing.T) {
		eng, err := New(&Config{})
		require.NoError(t, err)
		require.NotNil(t, eng)
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		_, err := New(&Config{Capacity: -1})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestEngine_Distribute(t *testing.T) {
	t.Run("grouped tokens that tile the capacity land in one game", func(t *testing.T) {
		eng := newTestEngine(t, Config{Capacity: 6})

		res, err := eng.Distribute(context.Background(), []string{"a=b", "c", "d=e=f"})
		require.NoError(t, err)
		require.Len(t, res.Buckets, 1)

		names := res.Buckets[0].Names()
		sort.Strings(names)
		require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, names)
	})

	t.Run("oversized group aborts before any search", func(t *testing.T) {
		rec := &recordingMetrics{}
		eng := newTestEngine(t, Config{Capacity: 6}, WithMetrics(rec))

		_, err := eng.Distribute(context.Background(), []string{"a=b=c=d=e=f=g"})
		require.ErrorIs(t, err, ErrGroupTooLarge)
		require.Equal(t, []string{"group_too_large"}, rec.validations)
		require.Zero(t, rec.solves)
		require.Zero(t, rec.timeouts)
	})

	t.Run("empty input aborts before any search", func(t *testing.T) {
		rec := &recordingMetrics{}
		eng := newTestEngine(t, Config{}, WithMetrics(rec))

		_, err := eng.Distribute(context.Background(), nil)
		require.ErrorIs(t, err, ErrNoParticipants)
		require.Equal(t, []string{"no_participants"}, rec.validations)
		require.Zero(t, rec.solves)
	})

	t.Run("pathological instance times out and leaves the engine healthy", func(t *testing.T) {
		rec := &recordingMetrics{}
		eng := newTestEngine(t, Config{Capacity: 7, SolveTimeout: 20 * time.Millisecond}, WithMetrics(rec))

		tokens := make([]string, 30)
		for i := range tokens {
			tokens[i] = "x=y"
		}

		_, err := eng.Distribute(context.Background(), tokens)
		require.ErrorIs(t, err, ErrDeadlineExceeded)
		require.Contains(t, err.Error(), "20ms")
		require.Equal(t, 1, rec.timeouts)

		// A subsequent unrelated call still succeeds normally.
		res, err := eng.Distribute(context.Background(), []string{"a", "b=c", "d=e=f"})
		require.NoError(t, err)
		require.Len(t, res.Buckets, 1)
		require.Equal(t, 1, rec.solves)
	})

	t.Run("every participant appears exactly once across buckets", func(t *testing.T) {
		eng := newTestEngine(t, Config{Capacity: 6})

		tokens := []string{"a=b=c", "d=e", "f", "g=h", "i", "j=k=l", "m"}
		res, err := eng.Distribute(context.Background(), tokens)
		require.NoError(t, err)

		var all []string
		for _, b := range res.Buckets {
			require.LessOrEqual(t, b.Sum(), 6)
			all = append(all, b.Names()...)
		}
		sort.Strings(all)
		require.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"}, all)
	})

	t.Run("seeded random source makes assembly deterministic", func(t *testing.T) {
		tokens := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

		run := func() string {
			eng := newTestEngine(t, Config{Capacity: 4, CacheSize: 0},
				WithRand(rand.New(rand.NewPCG(7, 7))))
			res, err := eng.Distribute(context.Background(), tokens)
			require.NoError(t, err)

			return res.Render()
		}

		require.Equal(t, run(), run())
	})

	t.Run("repeat roster hits the solve cache", func(t *testing.T) {
		rec := &recordingMetrics{}
		eng := newTestEngine(t, Config{CacheSize: 16}, WithMetrics(rec))

		tokens := []string{"a=b", "c", "d", "e=f"}
		_, err := eng.Distribute(context.Background(), tokens)
		require.NoError(t, err)
		_, err = eng.Distribute(context.Background(), tokens)
		require.NoError(t, err)

		require.Equal(t, []bool{false, true}, rec.cacheHits)
		require.Equal(t, 2, rec.solves)
	})

	t.Run("concurrent calls are independent", func(t *testing.T) {
		eng := newTestEngine(t, Config{})

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := eng.Distribute(context.Background(), []string{"a", "b=c", "d", "e", "f=g=h"})
				require.NoError(t, err)
				require.NotEmpty(t, res.Buckets)
			}()
		}
		wg.Wait()
	})
}

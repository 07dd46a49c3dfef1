package solver

import (
	"context"
	"encoding/binary"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/zeebo/xxh3"

	"github.com/beeracademy/distribute/types"
)

// Cache memoizes solve results across calls.
//
// A solve is a pure function of (weights, capacity), so identical requests --
// the same roster resubmitted, a retry after a cosmetic reshuffle -- can reuse
// the abstract assignment. The cosmetic shuffle downstream stays per-call;
// only the assignment and its objective are cached.
//
// The cache is safe for concurrent use. It never caches failures: a solve that
// timed out is retried from scratch on the next request.
type Cache struct {
	entries    *xsync.Map[uint64, types.SolverResult]
	maxEntries int
}

// NewCache creates a solve-result cache holding at most maxEntries results.
//
// Once full the cache stops admitting new entries rather than evicting; the
// input space of a chat command is small enough that churn is not a concern.
//
// Parameters:
//   - maxEntries: Maximum number of cached results (must be positive)
//
// Returns:
//   - *Cache: An empty cache ready for concurrent use
func NewCache(maxEntries int) *Cache {
	return &Cache{
		entries:    xsync.NewMap[uint64, types.SolverResult](),
		maxEntries: maxEntries,
	}
}

// Solve returns the cached result for (weights, capacity) or computes, stores,
// and returns it.
//
// Parameters:
//   - ctx: Context bounding the search on a cache miss
//   - weights: Group weights in encounter order
//   - capacity: Maximum total weight per bucket
//
// Returns:
//   - types.SolverResult: An optimal assignment (caller-owned copy)
//   - bool: true when the result came from the cache
//   - error: Solve error on a miss; misses that fail are not cached
func (c *Cache) Solve(ctx context.Context, weights []int, capacity int) (types.SolverResult, bool, error) {
	key := cacheKey(weights, capacity)

	if cached, ok := c.entries.Load(key); ok {
		return cloneResult(cached), true, nil
	}

	result, err := SolveContext(ctx, weights, capacity)
	if err != nil {
		return types.SolverResult{}, false, err
	}

	if c.entries.Size() < c.maxEntries {
		c.entries.Store(key, cloneResult(result))
	}

	return result, false, nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.entries.Size()
}

// cacheKey hashes capacity plus the ordered weight vector into a single xxh3
// 64-bit key. Length is implied by the encoded byte count, so distinct vectors
// produce distinct inputs.
func cacheKey(weights []int, capacity int) uint64 {
	buf := make([]byte, 0, 8*(len(weights)+1))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(capacity))
	for _, w := range weights {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(w))
	}

	return xxh3.Hash(buf)
}

// cloneResult deep-copies the assignment so cached state can never be mutated
// through a returned result.
func cloneResult(r types.SolverResult) types.SolverResult {
	r.Assignment = append(types.Assignment(nil), r.Assignment...)

	return r
}

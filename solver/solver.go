package solver

import (
	"context"
	"fmt"

	"github.com/beeracademy/distribute/types"
)

// checkInterval is the number of expanded search nodes between context polls.
// Polling on every node would dominate the cost of the branch step itself;
// 4096 nodes take well under a millisecond, so cancellation latency stays
// negligible next to any realistic deadline.
const checkInterval = 4096

// Solve computes an optimal assignment of the given group weights into buckets
// of the given capacity, minimizing (bucket count, imbalance) lexicographically.
//
// Preconditions (the caller validates input first; violations are reported as
// plain errors, not as the library's user-facing validation errors):
//   - weights is non-empty and every weight is positive
//   - every weight is <= capacity
//
// When several assignments share the optimal objective, which one is returned
// is unspecified; callers must not depend on it.
//
// Parameters:
//   - weights: Group weights in encounter order
//   - capacity: Maximum total weight per bucket
//
// Returns:
//   - types.SolverResult: An optimal assignment and its objective
//   - error: Precondition violation
func Solve(weights []int, capacity int) (types.SolverResult, error) {
	return SolveContext(context.Background(), weights, capacity)
}

// SolveContext is Solve with cooperative cancellation.
//
// The search polls ctx at a bounded node interval and aborts promptly once the
// context is done, returning types.ErrDeadlineExceeded. No partial result is
// returned on abort, and no state outlives the call.
//
// Parameters:
//   - ctx: Context bounding the search's wall-clock budget
//   - weights: Group weights in encounter order
//   - capacity: Maximum total weight per bucket
//
// Returns:
//   - types.SolverResult: An optimal assignment and its objective
//   - error: types.ErrDeadlineExceeded on cancellation, or precondition violation
func SolveContext(ctx context.Context, weights []int, capacity int) (types.SolverResult, error) {
	if len(weights) == 0 {
		return types.SolverResult{}, fmt.Errorf("solver: empty weight vector")
	}
	if capacity <= 0 {
		return types.SolverResult{}, fmt.Errorf("solver: capacity must be positive, got %d", capacity)
	}

	total := 0
	for _, w := range weights {
		if w <= 0 {
			return types.SolverResult{}, fmt.Errorf("solver: weights must be positive, got %d", w)
		}
		if w > capacity {
			return types.SolverResult{}, fmt.Errorf("solver: weight %d exceeds capacity %d", w, capacity)
		}
		total += w
	}

	s := &search{
		ctx:      ctx,
		weights:  weights,
		capacity: capacity,
		// Sentinel strictly worse than any real assignment: even one group
		// per bucket uses only len(weights) buckets.
		bestKey: types.Key{Buckets: len(weights) + 1},
		floor:   globalFloor(total, capacity),
	}
	s.run(0)

	if s.canceled {
		return types.SolverResult{}, types.ErrDeadlineExceeded
	}

	return s.best, nil
}

// globalFloor returns the best objective any assignment could possibly achieve:
// the pigeonhole bucket count, with zero imbalance when the weights tile the
// capacity exactly and at least one otherwise. Reaching it ends the search.
func globalFloor(total, capacity int) types.Key {
	floor := types.Key{Buckets: (total + capacity - 1) / capacity}
	if total%capacity != 0 {
		floor.Imbalance = 1
	}

	return floor
}

// search holds the call-local state of one solve. Nothing in it is shared:
// every SolveContext call allocates its own search, so concurrent solves are
// independent by construction.
type search struct {
	ctx      context.Context
	weights  []int
	capacity int

	// spaceLeft is the arena of open buckets, each entry the remaining free
	// capacity of one bucket. Buckets are only appended during descent and
	// truncated on backtrack, never removed mid-search.
	spaceLeft []int

	// assigned is the partial assignment stack, parallel to weights[0:i].
	assigned []int

	best    types.SolverResult
	bestKey types.Key
	floor   types.Key

	nodes    int
	canceled bool
}

// run places group i into every feasible bucket in turn, depth first.
func (s *search) run(i int) {
	s.nodes++
	if s.nodes%checkInterval == 0 {
		select {
		case <-s.ctx.Done():
			s.canceled = true
			return
		default:
		}
	}

	if i == len(s.weights) {
		key := s.leafKey()
		if key.Less(s.bestKey) {
			s.bestKey = key
			s.best = types.SolverResult{
				Buckets:    key.Buckets,
				Imbalance:  key.Imbalance,
				Assignment: append(types.Assignment(nil), s.assigned...),
			}
		}

		return
	}

	// The incumbent can never be beaten once it matches the global floor.
	if s.bestKey == s.floor {
		return
	}

	// From a partial state with this many buckets open, the best reachable
	// objective is (open, 0); abandon the branch when that cannot win.
	if !(types.Key{Buckets: len(s.spaceLeft)}).Less(s.bestKey) {
		return
	}

	w := s.weights[i]
	open := len(s.spaceLeft)

	// Try every open bucket in opening order, then a fresh bucket. Opening a
	// new bucket even when an existing one fits keeps the search exhaustive.
	for j := 0; j <= open; j++ {
		if j == open {
			s.spaceLeft = append(s.spaceLeft, s.capacity)
		}

		if s.spaceLeft[j] >= w {
			s.spaceLeft[j] -= w
			s.assigned = append(s.assigned, j)

			s.run(i + 1)

			s.assigned = s.assigned[:len(s.assigned)-1]
			s.spaceLeft[j] += w

			if s.canceled {
				s.spaceLeft = s.spaceLeft[:open]
				return
			}
		}
	}

	s.spaceLeft = s.spaceLeft[:open]
}

// leafKey computes the objective of the complete assignment on the stack.
// Imbalance over remaining capacities equals imbalance over bucket sums,
// since every bucket started from the same capacity.
func (s *search) leafKey() types.Key {
	minLeft, maxLeft := s.spaceLeft[0], s.spaceLeft[0]
	for _, left := range s.spaceLeft[1:] {
		if left < minLeft {
			minLeft = left
		}
		if left > maxLeft {
			maxLeft = left
		}
	}

	return types.Key{Buckets: len(s.spaceLeft), Imbalance: maxLeft - minLeft}
}

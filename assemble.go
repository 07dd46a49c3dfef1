package distribute

import (
	"fmt"
	"strings"

	"github.com/beeracademy/distribute/types"
)

// Result is the final partitioning handed back to the caller: the concrete
// buckets in the order they were opened during search.
type Result struct {
	Buckets []types.Bucket
}

// Render formats the partitioning as the end-user message, one line per game.
//
// Returns:
//   - string: "Partitioned players into N games:" followed by one
//     "Game i: name, name, ..." line per bucket
func (r *Result) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Partitioned players into %d games:\n", len(r.Buckets))
	for i, bucket := range r.Buckets {
		fmt.Fprintf(&b, "Game %d: %s\n", i+1, bucket)
	}

	return b.String()
}

// assemble maps the solver's abstract assignment back onto concrete groups.
//
// Each weight class is shuffled independently first, so which same-size group
// fills which slot is cosmetic; then one class member is popped per occurrence
// of that weight, in assignment order. The shuffle cannot change bucket count
// or imbalance. The classes map is consumed in place; it is request-scoped.
func assemble(assignment types.Assignment, weights []int, classes map[int][]types.Group, shuffle func(n int, swap func(i, j int))) []types.Bucket {
	for _, groups := range classes {
		shuffle(len(groups), func(i, j int) {
			groups[i], groups[j] = groups[j], groups[i]
		})
	}

	buckets := make([]types.Bucket, assignment.BucketCount())
	taken := make(map[int]int, len(classes))

	for i, j := range assignment {
		w := weights[i]
		group := classes[w][taken[w]]
		taken[w]++
		buckets[j].Groups = append(buckets[j].Groups, group)
	}

	return buckets
}

// Package distribute partitions weighted participant groups into the fewest
// possible fixed-capacity game buckets, breaking ties by the smallest spread
// between the fullest and emptiest bucket.
//
// The engine is a pure request-scoped pipeline: raw tokens are parsed into
// atomic groups (a token like "a=b=c" keeps those names together), the group
// weights are solved by an exhaustive branch-and-bound search under a hard
// wall-clock budget, and the optimal assignment is mapped back onto concrete
// rosters with a cosmetic shuffle among same-size groups.
//
// # Quick Start
//
//	cfg := distribute.DefaultConfig()
//	eng, err := distribute.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := eng.Distribute(ctx, []string{"alice=bob", "carol", "dan"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Render())
//
// # Errors
//
// Validation failures (empty input, a group larger than the capacity) and
// deadline exhaustion are reported through sentinel errors in the types
// subpackage, re-exported here; check them with errors.Is. Both are terminal
// for the request: the engine never retries and never surfaces a partial
// result.
//
// # Concurrency
//
// An Engine is safe for concurrent use. Every Distribute call owns its own
// search state; only the optional solve-result cache is shared, and it is
// concurrency-safe.
package distribute

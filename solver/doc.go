// Package solver implements exhaustive branch-and-bound bin packing of weighted
// groups into fixed-capacity buckets.
//
// The search minimizes the pair (bucket count, imbalance) lexicographically:
// the fewest buckets always wins, and among assignments with the minimal bucket
// count the smallest spread between the fullest and emptiest bucket wins. The
// result is provably optimal; pruning only discards branches whose best
// reachable objective cannot beat the incumbent.
//
// Complexity is combinatorial in the number of groups, which is acceptable only
// because inputs are small (a chat command's argument list). Callers enforce a
// wall-clock budget through SolveContext's context.
package solver

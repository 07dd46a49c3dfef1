package types

import "strings"

// Group is an atomic set of participants that must land in the same bucket.
//
// Groups are constructed once from raw input and are immutable for the run.
// The solver never splits a group; it places whole groups only.
type Group struct {
	// Names are the participant names in encounter order.
	Names []string
}

// Weight returns the group's size, the unit of capacity it consumes.
func (g Group) Weight() int {
	return len(g.Names)
}

// Assignment maps a weight-vector index to the bucket index the group was
// placed in. Bucket indices are 0-based in the order buckets were opened
// during search; the total bucket count is 1 + the maximum index used.
type Assignment []int

// BucketCount returns the number of buckets the assignment uses.
//
// Returns:
//   - int: 1 + max bucket index, or 0 for an empty assignment
func (a Assignment) BucketCount() int {
	count := 0
	for _, j := range a {
		if j+1 > count {
			count = j + 1
		}
	}

	return count
}

// Key is the lexicographic objective of the solver: fewer buckets always wins,
// and among equal bucket counts a smaller imbalance (max bucket sum minus min
// bucket sum) wins.
type Key struct {
	Buckets   int
	Imbalance int
}

// Less reports whether k is a strictly better objective than other.
func (k Key) Less(other Key) bool {
	if k.Buckets != other.Buckets {
		return k.Buckets < other.Buckets
	}

	return k.Imbalance < other.Imbalance
}

// SolverResult is an optimal assignment together with its objective.
type SolverResult struct {
	// Buckets is the minimal feasible bucket count.
	Buckets int

	// Imbalance is the spread (max - min) of bucket sums, minimal among all
	// assignments using Buckets buckets.
	Imbalance int

	// Assignment maps each weight-vector index to its bucket.
	Assignment Assignment
}

// Key returns the result's objective pair.
func (r SolverResult) Key() Key {
	return Key{Buckets: r.Buckets, Imbalance: r.Imbalance}
}

// Bucket is a finalized output bucket: the concrete groups assigned together.
// It is produced once from an Assignment for rendering and then discarded.
type Bucket struct {
	Groups []Group
}

// Sum returns the total weight of the bucket.
func (b Bucket) Sum() int {
	sum := 0
	for _, g := range b.Groups {
		sum += g.Weight()
	}

	return sum
}

// Names returns the bucket's participant names flattened in group order.
func (b Bucket) Names() []string {
	names := make([]string, 0, b.Sum())
	for _, g := range b.Groups {
		names = append(names, g.Names...)
	}

	return names
}

// String renders the bucket's participants as a comma-separated list.
func (b Bucket) String() string {
	return strings.Join(b.Names(), ", ")
}

package matching_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bimatch/bgraph"
	"github.com/katalvlaran/bimatch/matching"
)

////////////////////////////////////////////////////////////////////////////////
// Matching Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleMatching demonstrates a maximum matching on an instance with a
// unique optimum. Pairs are sorted for stable output; the algorithm itself
// guarantees the size, not the order.
func ExampleMatching() {
	edges := []bgraph.Edge[int]{{Left: 0, Right: 10}, {Left: 0, Right: 11}, {Left: 0, Right: 12}, {Left: 1, Right: 11}, {Left: 2, Right: 12}}

	pairs := matching.Matching(edges)
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Left < pairs[j].Left })
	fmt.Println(pairs)
	// Output:
	// [{0 10} {1 11} {2 12}]
}

// ExampleMatchingSize demonstrates the count-only variant.
func ExampleMatchingSize() {
	edges := []bgraph.Edge[int]{{Left: 0, Right: 10}, {Left: 0, Right: 11}, {Left: 0, Right: 12}, {Left: 0, Right: 13}}

	fmt.Println(matching.MatchingSize(edges))
	// Output:
	// 1
}

////////////////////////////////////////////////////////////////////////////////
// Bounded & Mapped Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleBoundedMatchingSize demonstrates the early stop: the bound wins
// below the optimum, the optimum wins above it.
func ExampleBoundedMatchingSize() {
	edges := []bgraph.Edge[int]{{Left: 0, Right: 10}, {Left: 0, Right: 11}, {Left: 0, Right: 12}, {Left: 1, Right: 11}, {Left: 2, Right: 12}}

	fmt.Println(matching.BoundedMatchingSize(edges, 2))
	fmt.Println(matching.BoundedMatchingSize(edges, 99))
	// Output:
	// 2
	// 3
}

// ExampleMatchingMapped demonstrates matching over string labels via the
// internal dense relabeling.
func ExampleMatchingMapped() {
	edges := []bgraph.Edge[string]{
		{Left: "ann", Right: "desk-1"}, {Left: "ann", Right: "desk-2"},
		{Left: "bob", Right: "desk-2"},
	}

	pairs := matching.MatchingMapped(edges)
	fmt.Println(len(pairs))
	// Output:
	// 2
}

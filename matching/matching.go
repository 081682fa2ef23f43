package matching

import "github.com/katalvlaran/bimatch/bgraph"

// Match computes a bipartite matching of the graph described by edges,
// applying any number of functional Options (bound, validation,
// relabeling). With no options it returns a maximum matching.
//
// It is the option-driven engine behind the fixed convenience entry
// points below; the only error it can surface is bgraph.ErrNotBipartite,
// and only when WithValidation is set.
//
// Complexity: O(E·√V) time, O(V + E) memory.
func Match[V comparable](edges []bgraph.Edge[V], opts ...Option) ([]bgraph.Edge[V], error) {
	o := resolve(opts)
	if err := check(edges, o); err != nil {
		return nil, err
	}
	if o.Relabel {
		dense, idx := bgraph.Relabel(edges)

		return idx.Translate(bounded(bgraph.New(dense), o.Bound).pairs()), nil
	}

	return bounded(bgraph.New(edges), o.Bound).pairs(), nil
}

// MatchSize is Match without materializing the pair list: it returns only
// the matching's cardinality.
func MatchSize[V comparable](edges []bgraph.Edge[V], opts ...Option) (int, error) {
	o := resolve(opts)
	if err := check(edges, o); err != nil {
		return 0, err
	}
	if o.Relabel {
		dense, _ := bgraph.Relabel(edges)

		return bounded(bgraph.New(dense), o.Bound).size, nil
	}

	return bounded(bgraph.New(edges), o.Bound).size, nil
}

// Matching computes a maximum-cardinality matching of the bipartite graph
// described by edges and returns it as (left, right) pairs.
//
// Vertices may be any comparable type; adjacency is keyed directly on the
// vertex value, which is the efficient choice for small or dense domains.
// For expensive or sparse labels prefer MatchingMapped.
//
// The returned size is always the same for a given input; which edges tie
// together may vary between runs (Go map iteration order breaks ties).
func Matching[V comparable](edges []bgraph.Edge[V]) []bgraph.Edge[V] {
	pairs, _ := Match(edges)

	return pairs
}

// MatchingSize computes the cardinality of a maximum matching without
// materializing the edge list. MatchingSize(e) == len(Matching(e)) always.
func MatchingSize[V comparable](edges []bgraph.Edge[V]) int {
	size, _ := MatchSize(edges)

	return size
}

// MatchingStrict is Matching over a validated graph: it fails with
// bgraph.ErrNotBipartite (and no result) when any vertex label appears on
// both sides of the edge list.
func MatchingStrict[V comparable](edges []bgraph.Edge[V]) ([]bgraph.Edge[V], error) {
	return Match(edges, WithValidation())
}

// MatchingSizeStrict is MatchingSize over a validated graph.
func MatchingSizeStrict[V comparable](edges []bgraph.Edge[V]) (int, error) {
	return MatchSize(edges, WithValidation())
}

// BoundedMatching is Matching with an early stop: the computation halts as
// soon as the matching reaches min(bound, maximum possible size), skipping
// any remaining phases and free vertices. A bound ≤ 0 yields an empty
// matching; a bound above the maximum has no effect.
func BoundedMatching[V comparable](edges []bgraph.Edge[V], bound int) []bgraph.Edge[V] {
	pairs, _ := Match(edges, WithBound(floor(bound)))

	return pairs
}

// BoundedMatchingSize is the cardinality-only counterpart of
// BoundedMatching: it returns min(bound, MatchingSize(edges)).
func BoundedMatchingSize[V comparable](edges []bgraph.Edge[V], bound int) int {
	size, _ := MatchSize(edges, WithBound(floor(bound)))

	return size
}

// MatchingMapped is Matching with an internal relabeling pass: vertices are
// mapped onto dense integers, the matching runs in the integer domain, and
// the result is translated back. Intended for vertex types with expensive
// hashing or comparison, or sparse non-integer label spaces.
func MatchingMapped[V comparable](edges []bgraph.Edge[V]) []bgraph.Edge[V] {
	pairs, _ := Match(edges, WithRelabeling())

	return pairs
}

// MatchingMappedSize is the cardinality-only counterpart of MatchingMapped;
// no reverse translation is needed for a count.
func MatchingMappedSize[V comparable](edges []bgraph.Edge[V]) int {
	size, _ := MatchSize(edges, WithRelabeling())

	return size
}

// BoundedMatchingMapped combines the relabeling of MatchingMapped with the
// early stop of BoundedMatching.
func BoundedMatchingMapped[V comparable](edges []bgraph.Edge[V], bound int) []bgraph.Edge[V] {
	pairs, _ := Match(edges, WithRelabeling(), WithBound(floor(bound)))

	return pairs
}

// BoundedMatchingMappedSize is the cardinality-only counterpart of
// BoundedMatchingMapped.
func BoundedMatchingMappedSize[V comparable](edges []bgraph.Edge[V], bound int) int {
	size, _ := MatchSize(edges, WithRelabeling(), WithBound(floor(bound)))

	return size
}

// check runs the optional strict validation. The graph is rebuilt by the
// caller afterwards; validation is the rare path and stays off the
// fast one.
func check[V comparable](edges []bgraph.Edge[V], o MatchOptions) error {
	if !o.Validate {
		return nil
	}
	_, err := bgraph.NewStrict(edges)

	return err
}

// floor maps the bounded entry points' "bound ≤ 0 means empty" contract
// onto the option domain, where a negative Bound means Unbounded.
func floor(bound int) int {
	if bound < 0 {
		return 0
	}

	return bound
}

// bounded resolves the effective stop target and runs the matcher:
// a negative bound means Unbounded, anything above min(|L|, |R|) clamps
// to it (no matching can exceed the smaller side).
func bounded[V comparable](g *bgraph.Graph[V], bound int) *matcher[V] {
	limit := min(g.LeftCount(), g.RightCount())
	if bound < 0 || bound > limit {
		bound = limit
	}
	m := newMatcher(g, bound)
	m.run()

	return m
}

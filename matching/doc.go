// Package matching computes maximum-cardinality matchings in undirected
// bipartite graphs with the Hopcroft–Karp algorithm: edge list in, matched
// (left, right) pairs — or just the matching size — out.
//
// What
//
//   - Matching / MatchingSize: maximum matching over any comparable vertex
//     type, adjacency keyed directly on the vertex value.
//   - MatchingMapped / MatchingMappedSize: the same computation after an
//     internal relabeling onto dense integers, translated back afterwards;
//     the right choice for expensive-to-hash or sparse label domains.
//   - BoundedMatching (+ Mapped, + Size variants): stop early once the
//     matching reaches min(bound, maximum possible size).
//   - MatchingStrict / MatchingSizeStrict: validate bipartiteness first and
//     fail with bgraph.ErrNotBipartite instead of computing on bad input.
//   - Match / MatchSize: the option-driven entry points behind all of the
//     above, configured with functional Options.
//
// How
//
//	Hopcroft–Karp runs in phases. Each phase first layers the graph with a
//	breadth-first pass: free left vertices sit at depth 0 and alternating
//	paths (non-matching edge out, matching edge back) extend the layering
//	one level at a time. A synthetic guard vertex — a tagged union variant,
//	never a reserved label — stands in for all unmatched right vertices and
//	for the value "no partner" in the pairing maps. The phase then runs
//	depth-first probes from every free left vertex, each restricted to
//	successors exactly one layer deeper, flipping matched/unmatched edges
//	along every augmenting path it completes. Dead ends are poisoned for
//	the remainder of the phase, so each phase costs O(E); shortest-path
//	layering bounds the number of phases by O(√V).
//
// Determinism
//
//	The matching size is fully determined by the input. The particular edge
//	set is not: ties between equally good partners follow Go map iteration
//	order, so successive runs may pair differently while always agreeing on
//	the (maximum) cardinality.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(E·√V)
//   - Memory: O(V + E) for the graph, pairing maps, and layer depths.
//
// Usage
//
//	edges := []bgraph.Edge[int]{{0, 10}, {0, 11}, {0, 12}, {1, 11}, {2, 12}}
//
//	pairs := matching.Matching(edges)      // 3 pairs
//	n := matching.MatchingSize(edges)      // 3, no pair list built
//	two := matching.BoundedMatching(edges, 2)
//
//	// Validated entry point:
//	pairs, err := matching.MatchingStrict(edges)
//	if err != nil {
//	    // errors.Is(err, bgraph.ErrNotBipartite) — defect in the input
//	}
//
//	// Option-driven form, combining knobs freely:
//	pairs, err = matching.Match(edges,
//	    matching.WithValidation(),
//	    matching.WithRelabeling(),
//	    matching.WithBound(2),
//	)
//
// Options
//
//   - DefaultOptions(): no bound, no validation, no relabeling.
//   - WithBound(k):     stop at min(k, maximum size); negative k = Unbounded.
//   - WithValidation(): reject non-bipartite input up front.
//   - WithRelabeling(): compute in a dense integer domain, translate back.
//
// Errors
//
//   - bgraph.ErrNotBipartite — Strict variants only: a vertex label appears
//     on both sides of the edge list. Fatal to the call, no partial result.
//   - An empty edge list is valid input and yields an empty matching.
//
// The computation is single-threaded, performs no I/O, and shares no state
// between calls; there is no cancellation hook — the size bound is the only
// early exit.
package matching

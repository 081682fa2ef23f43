// Package bgraph provides an immutable, generic bipartite graph built from
// an edge list, plus dense-integer relabeling for expensive vertex domains.
//
// What
//
//   - Edge[V]: an ordered (Left, Right) pair over any comparable vertex type.
//   - Graph[V]: left/right partition sets plus symmetric set-valued adjacency,
//     built once by New or NewStrict and never mutated afterwards.
//   - Duplicate edges are idempotent: adjacency is a set, so feeding the same
//     pair twice changes nothing.
//   - NewStrict additionally enforces the bipartite invariant
//     left ∩ right = ∅ over the whole edge list and fails with
//     ErrNotBipartite when a label shows up on both sides.
//   - Relabel maps arbitrary labels onto dense integers (left ids first,
//     then right ids) and returns an Index for translating results back.
//
// Why
//
//   - Matching algorithms want O(1) partition membership and neighbor sets;
//     building them once up front keeps the algorithm loop allocation-light.
//   - Callers with string, struct, or sparse integer labels can relabel onto
//     a dense [0, n) domain, run the algorithm there, and translate back.
//
// Side membership
//
//	Which partition a vertex belongs to is decided purely by its position
//	inside each supplied edge. A vertex that never appears as a Left element
//	is never treated as a left vertex, even if the caller "meant" it to be
//	one. This positional rule is inherited behavior, not a contract to lean
//	on: if the caller is inconsistent, New silently miscategorizes and only
//	NewStrict will notice (and then only when the same label truly occurs on
//	both sides).
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - New / NewStrict / Relabel: O(E) expected time, O(V + E) memory.
//   - All accessors: O(1), except the slice-returning ones which are O(k)
//     in the size k of the returned slice.
//
// Usage
//
//	g := bgraph.New([]bgraph.Edge[int]{{0, 10}, {0, 11}, {1, 11}})
//
//	strict, err := bgraph.NewStrict(edges)
//	if err != nil {
//	    // errors.Is(err, bgraph.ErrNotBipartite) — input defect, not recoverable
//	}
//
//	dense, idx := bgraph.Relabel(edges) // ints in, Index out
//	_ = idx.Translate(dense)            // and back again
//
// Errors
//
//   - ErrNotBipartite — NewStrict only; a vertex label appears on both sides.
//
// See the matching package for the Hopcroft–Karp algorithms that consume
// these graphs.
package bgraph

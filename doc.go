// Package bimatch is an in-memory toolkit for maximum-cardinality matching
// in undirected bipartite graphs — edge list in, matched pairs (or just the
// matching size) out.
//
// 🚀 What is bimatch?
//
//	A small, focused library built around the Hopcroft–Karp algorithm:
//		• Bipartite primitives: build an immutable two-sided graph from any edge list
//		• Generic vertices: any comparable Go type works as a vertex label
//		• Matching: maximum matching, size-only, bounded (early-stop) variants
//		• Relabeling: map expensive vertex domains onto dense integers and back
//		• Validation: strict constructors reject inputs that are not bipartite
//
// ✨ Why choose bimatch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable guarantees – O(E·√V) time, deterministic matching size
//   - Pure Go – no cgo, no hidden deps
//   - Composable – graph construction, relabeling and matching are separate steps
//
// Under the hood, everything is organized under two subpackages:
//
//	bgraph/   — bipartite Graph and Edge types, strict validation, dense relabeling
//	matching/ — the Hopcroft–Karp matcher and the public matching operations
//
// Quick ASCII example:
//
//	    L0───R0
//	    L0───R1
//	    L1───R1
//	    L2───R2
//
//	admits the perfect matching {L0–R0, L1–R1, L2–R2}.
//
// Dive into the package docs of bgraph and matching for full examples,
// complexity notes, and pitfalls.
//
//	go get github.com/katalvlaran/bimatch
package bimatch

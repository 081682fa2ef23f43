// Package matching provides tunable options for the Hopcroft–Karp matcher
// plus its internal state types: the guarded vertex union and the
// layer-depth sentinel.
package matching

import "math"

// Unbounded disables the early-stop bound: the matcher runs to fixpoint.
const Unbounded = -1

// Option configures a matching computation via functional arguments.
type Option func(*MatchOptions)

// MatchOptions holds the knobs shared by Match and MatchSize; the fixed
// convenience entry points (Matching, BoundedMatchingMapped, ...) are thin
// wrappers that preset these fields.
type MatchOptions struct {
	// Bound stops the computation once the matching reaches
	// min(Bound, max possible size). Any negative value means Unbounded.
	Bound int

	// Validate runs the global bipartite check up front and fails the
	// call with bgraph.ErrNotBipartite instead of computing on bad input.
	Validate bool

	// Relabel routes the computation through a dense integer domain and
	// translates the result back, for expensive or sparse vertex types.
	Relabel bool
}

// DefaultOptions returns a MatchOptions with sane defaults:
//   - no bound (run to the maximum matching)
//   - no validation (caller vouches for bipartiteness)
//   - no relabeling (adjacency keyed directly on the vertex value).
func DefaultOptions() MatchOptions {
	return MatchOptions{
		Bound:    Unbounded,
		Validate: false,
		Relabel:  false,
	}
}

// WithBound stops the computation once the matching reaches
// min(k, max possible size). A negative k means Unbounded; k == 0 yields
// an empty matching.
func WithBound(k int) Option {
	return func(o *MatchOptions) {
		o.Bound = k
	}
}

// WithValidation enables the strict bipartite check.
func WithValidation() Option {
	return func(o *MatchOptions) {
		o.Validate = true
	}
}

// WithRelabeling enables the dense-integer relabeling pass.
func WithRelabeling() Option {
	return func(o *MatchOptions) {
		o.Relabel = true
	}
}

// resolve folds opts over the defaults.
func resolve(opts []Option) MatchOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// infinity marks a vertex not (yet) reached by the current BFS layering.
// It exceeds any possible layer depth, which is bounded by the vertex count.
const infinity = math.MaxInt

// guarded is "a vertex or the guard", the tagged union used wherever a
// vertex-or-unmatched value is stored: pairing values and depth-map keys.
//
// The guard plays two roles: it is the pairing value meaning "unmatched",
// and it acts as a synthetic BFS sink adjacent to every currently-unmatched
// right vertex. Being a distinct variant rather than a reserved vertex
// literal, it can never collide with a real label (e.g. math.MaxInt used as
// a legitimate vertex id).
type guarded[V comparable] struct {
	guard bool
	v     V
}

// guardOf returns the guard value for vertex type V.
func guardOf[V comparable]() guarded[V] { return guarded[V]{guard: true} }

// vertexOf wraps a real vertex.
func vertexOf[V comparable](v V) guarded[V] { return guarded[V]{v: v} }

// vertex unwraps a real vertex; asking the guard for one is a programmer
// error and unreachable in a correct matcher.
func (g guarded[V]) vertex() V {
	if g.guard {
		panic("matching: guard has no underlying vertex")
	}

	return g.v
}

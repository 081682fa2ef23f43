// Package bgraph provides the bipartite graph primitives and error
// definitions shared by the matching algorithms.
package bgraph

import "errors"

// Sentinel errors for bipartite graph construction.
var (
	// ErrNotBipartite is returned by NewStrict when a vertex label appears
	// on both the left and the right side of the edge list.
	ErrNotBipartite = errors.New("bgraph: graph is not bipartite")
)

// Edge is an ordered (left, right) pair as supplied by the caller.
// Which side a vertex belongs to is taken strictly from its position
// in the pair; the label itself carries no side information.
type Edge[V comparable] struct {
	Left  V
	Right V
}

// E is a convenience constructor for an Edge literal.
func E[V comparable](left, right V) Edge[V] {
	return Edge[V]{Left: left, Right: right}
}

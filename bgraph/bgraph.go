package bgraph

import "fmt"

// Graph is an undirected bipartite graph over vertex type V.
// It owns the left/right vertex partition and symmetric adjacency derived
// from the edge list it was built from, and is immutable after construction.
//
// Side membership is positional: a vertex is "left" because it appeared as
// the Left element of some edge, never because of what its label looks like.
// A label that appears on both sides is accepted by New (results are then
// undefined) and rejected by NewStrict.
type Graph[V comparable] struct {
	left  map[V]struct{}
	right map[V]struct{}
	adj   map[V]map[V]struct{}

	// edgeCount counts distinct undirected edges (duplicates collapse).
	edgeCount int
}

// New builds a Graph from the given edge list.
//
// The edge list may be empty and may contain duplicates; inserting the same
// edge twice has no additional effect (adjacency is a set). New performs no
// bipartiteness validation — callers that cannot vouch for their input
// should use NewStrict instead.
//
// Complexity: O(E) expected time, O(V + E) memory.
func New[V comparable](edges []Edge[V]) *Graph[V] {
	g := &Graph[V]{
		left:  make(map[V]struct{}, len(edges)),
		right: make(map[V]struct{}, len(edges)),
		adj:   make(map[V]map[V]struct{}, 2*len(edges)),
	}
	for _, e := range edges {
		g.insert(e.Left, e.Right)
	}

	return g
}

// NewStrict builds a Graph from the given edge list and verifies the
// bipartite invariant: no vertex label may appear on both the left and the
// right side anywhere in the edge list. The check is global over the
// constructed partition, not per edge.
//
// On violation it returns ErrNotBipartite (wrapped with the offending
// label) and no graph; the caller must treat this as a defect in the input,
// not a recoverable condition.
func NewStrict[V comparable](edges []Edge[V]) (*Graph[V], error) {
	g := New(edges)
	for v := range g.left {
		if _, ok := g.right[v]; ok {
			return nil, fmt.Errorf("%w: vertex %v appears on both sides", ErrNotBipartite, v)
		}
	}

	return g, nil
}

// insert records one undirected edge u↔v, updating both adjacency sides.
func (g *Graph[V]) insert(u, v V) {
	g.left[u] = struct{}{}
	g.right[v] = struct{}{}

	nu, ok := g.adj[u]
	if !ok {
		nu = make(map[V]struct{})
		g.adj[u] = nu
	}
	if _, dup := nu[v]; dup {
		return // duplicate edge, idempotent
	}
	nu[v] = struct{}{}
	g.edgeCount++

	nv, ok := g.adj[v]
	if !ok {
		nv = make(map[V]struct{})
		g.adj[v] = nv
	}
	nv[u] = struct{}{}
}

// LeftCount reports the number of distinct left vertices.
func (g *Graph[V]) LeftCount() int { return len(g.left) }

// RightCount reports the number of distinct right vertices.
func (g *Graph[V]) RightCount() int { return len(g.right) }

// EdgeCount reports the number of distinct undirected edges.
func (g *Graph[V]) EdgeCount() int { return g.edgeCount }

// HasLeft reports whether v appeared as a left endpoint.
func (g *Graph[V]) HasLeft(v V) bool {
	_, ok := g.left[v]
	return ok
}

// HasRight reports whether v appeared as a right endpoint.
func (g *Graph[V]) HasRight(v V) bool {
	_, ok := g.right[v]
	return ok
}

// HasEdge reports whether the undirected edge left↔right exists.
func (g *Graph[V]) HasEdge(left, right V) bool {
	_, ok := g.adj[left][right]
	return ok
}

// Degree reports the number of distinct neighbors of v, 0 if v is unknown.
func (g *Graph[V]) Degree(v V) int { return len(g.adj[v]) }

// LeftVertices returns the left partition as a fresh slice.
// Iteration order follows Go map order and is not stable across runs.
func (g *Graph[V]) LeftVertices() []V {
	out := make([]V, 0, len(g.left))
	for v := range g.left {
		out = append(out, v)
	}

	return out
}

// RightVertices returns the right partition as a fresh slice.
// Iteration order follows Go map order and is not stable across runs.
func (g *Graph[V]) RightVertices() []V {
	out := make([]V, 0, len(g.right))
	for v := range g.right {
		out = append(out, v)
	}

	return out
}

// Neighbors returns the distinct neighbors of v as a fresh slice,
// nil if v is unknown. For a left vertex these are right vertices and
// vice versa (adjacency is symmetric).
func (g *Graph[V]) Neighbors(v V) []V {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil
	}
	out := make([]V, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}

	return out
}

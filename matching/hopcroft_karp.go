package matching

import "github.com/katalvlaran/bimatch/bgraph"

// matcher owns the mutable Hopcroft–Karp state for one computation:
// the pairing maps (kept as mutual inverses), the per-phase BFS layer
// depths, and the running matching size. It consumes the graph by
// reference and never mutates it.
type matcher[V comparable] struct {
	g    *bgraph.Graph[V]
	left []V // snapshot of the left partition; fixes iteration order per run

	// pairLeft and pairRight map every left/right vertex to its current
	// partner, the guard meaning "unmatched". Invariant:
	// pairLeft[u] == v  ⟺  pairRight[v] == u.
	pairLeft  map[V]guarded[V]
	pairRight map[V]guarded[V]

	// dist holds BFS layer depths, keyed by guarded vertex so the guard
	// itself can carry a depth. Reset at the start of every phase.
	dist map[guarded[V]]int

	size  int // matched left vertices so far
	bound int // stop once size reaches bound
}

// newMatcher initializes all-unmatched state against g.
// bound is the effective stop target; callers clamp it to
// [0, min(leftCount, rightCount)] beforehand.
func newMatcher[V comparable](g *bgraph.Graph[V], bound int) *matcher[V] {
	m := &matcher[V]{
		g:         g,
		left:      g.LeftVertices(),
		pairLeft:  make(map[V]guarded[V], g.LeftCount()),
		pairRight: make(map[V]guarded[V], g.RightCount()),
		dist:      make(map[guarded[V]]int, g.LeftCount()+1),
		bound:     bound,
	}
	for _, u := range m.left {
		m.pairLeft[u] = guardOf[V]()
	}
	for _, v := range g.RightVertices() {
		m.pairRight[v] = guardOf[V]()
	}

	return m
}

// run executes BFS/DFS phases until no augmenting path remains or the
// bound is reached. Each phase finds a maximal set of vertex-disjoint
// shortest augmenting paths, giving O(√V) phases and O(E·√V) total time.
func (m *matcher[V]) run() {
	for m.size < m.bound && m.bfs() {
		for _, u := range m.left {
			if m.size == m.bound {
				break // bound hit mid-phase: skip remaining free vertices
			}
			if m.pairLeft[u].guard && m.dfs(vertexOf(u)) {
				m.size++
			}
		}
	}
}

// bfs rebuilds the layer depths for this phase: every free left vertex at
// depth 0, alternating-path successors one layer deeper. The guard stands
// in for all unmatched right vertices; its depth turns finite the moment
// the frontier reaches one, and that finite depth then caps the search to
// shortest augmenting paths only.
//
// Returns whether at least one augmenting path exists this phase.
func (m *matcher[V]) bfs() bool {
	queue := make([]guarded[V], 0, len(m.left))
	for _, u := range m.left {
		gu := vertexOf(u)
		if m.pairLeft[u].guard {
			m.dist[gu] = 0
			queue = append(queue, gu)
		} else {
			m.dist[gu] = infinity
		}
	}
	guard := guardOf[V]()
	m.dist[guard] = infinity

	for len(queue) > 0 {
		gu := queue[0]
		queue = queue[1:]

		// Expand only below the guard's depth; once the guard is reached,
		// deeper paths cannot be shortest. The guard itself never expands
		// (its depth is not less than itself), so vertex() is safe here.
		if m.dist[gu] < m.dist[guard] {
			for _, v := range m.g.Neighbors(gu.vertex()) {
				partner := m.pairRight[v]
				if m.dist[partner] == infinity {
					m.dist[partner] = m.dist[gu] + 1
					queue = append(queue, partner)
				}
			}
		}
	}

	return m.dist[guard] != infinity
}

// dfs searches for a depth-respecting alternating path from gu to the
// guard (an unmatched right vertex) and flips the matching along it,
// bottom-up, as the recursion unwinds. Reaching the guard always succeeds.
//
// A vertex that fails to extend is poisoned with infinite depth so later
// probes in the same phase never re-explore the dead frontier — the
// amortization that keeps one phase at O(E).
func (m *matcher[V]) dfs(gu guarded[V]) bool {
	if gu.guard {
		return true
	}
	u := gu.vertex()
	for _, v := range m.g.Neighbors(u) {
		partner := m.pairRight[v]
		if m.dist[partner] == m.dist[gu]+1 && m.dfs(partner) {
			m.pairRight[v] = gu
			m.pairLeft[u] = vertexOf(v)

			return true
		}
	}
	m.dist[gu] = infinity

	return false
}

// pairs materializes the matching: every left vertex with a non-guard
// partner, as (left, right) edges. Order follows m.left.
func (m *matcher[V]) pairs() []bgraph.Edge[V] {
	out := make([]bgraph.Edge[V], 0, m.size)
	for _, u := range m.left {
		if p := m.pairLeft[u]; !p.guard {
			out = append(out, bgraph.Edge[V]{Left: u, Right: p.vertex()})
		}
	}

	return out
}

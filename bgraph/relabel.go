package bgraph

// Index is the reverse lookup table produced by Relabel. It translates
// dense integer ids back to the caller's original vertex labels.
//
// Ids are assigned left side first, then right side, each in order of
// first appearance in the edge list, so for a valid bipartite input left
// ids occupy [0, leftCount) and right ids [leftCount, Len()).
type Index[V comparable] struct {
	fromDense []V
	leftCount int
}

// Relabel assigns each distinct vertex in edges a dense integer id and
// returns the integer-domain edge list together with the reverse Index.
//
// Use it when the original vertex type hashes or compares expensively, or
// when labels are sparse: run the matching on the returned dense edges and
// translate the result back via Index.Translate.
//
// Complexity: O(E) expected time, O(V + E) memory.
func Relabel[V comparable](edges []Edge[V]) ([]Edge[int], *Index[V]) {
	toDense := make(map[V]int, 2*len(edges))
	idx := &Index[V]{fromDense: make([]V, 0, 2*len(edges))}

	// Left ids first, in first-appearance order.
	for _, e := range edges {
		idx.assign(toDense, e.Left)
	}
	idx.leftCount = len(idx.fromDense)

	// Then right ids. A label already seen on the left keeps its left id,
	// mirroring how New would merge the two occurrences into one vertex.
	for _, e := range edges {
		idx.assign(toDense, e.Right)
	}

	dense := make([]Edge[int], len(edges))
	for i, e := range edges {
		dense[i] = Edge[int]{Left: toDense[e.Left], Right: toDense[e.Right]}
	}

	return dense, idx
}

// assign gives v a fresh dense id unless it already has one.
func (ix *Index[V]) assign(toDense map[V]int, v V) {
	if _, ok := toDense[v]; ok {
		return
	}
	toDense[v] = len(ix.fromDense)
	ix.fromDense = append(ix.fromDense, v)
}

// Len reports the number of distinct vertices that received an id.
func (ix *Index[V]) Len() int { return len(ix.fromDense) }

// LeftCount reports how many ids belong to the left range [0, LeftCount).
func (ix *Index[V]) LeftCount() int { return ix.leftCount }

// FromDense returns the original label for a dense id.
// It panics if id was never assigned.
func (ix *Index[V]) FromDense(id int) V { return ix.fromDense[id] }

// Translate maps an integer-domain edge list (e.g. a matching computed on
// the dense graph) back onto the original vertex labels.
func (ix *Index[V]) Translate(dense []Edge[int]) []Edge[V] {
	out := make([]Edge[V], len(dense))
	for i, e := range dense {
		out[i] = Edge[V]{Left: ix.fromDense[e.Left], Right: ix.fromDense[e.Right]}
	}

	return out
}

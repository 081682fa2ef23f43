package bgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/bimatch/bgraph"
)

// TestNew_Empty verifies that an empty edge list builds an empty graph.
func TestNew_Empty(t *testing.T) {
	g := bgraph.New[int](nil)
	if got := g.LeftCount(); got != 0 {
		t.Errorf("LeftCount = %d; want 0", got)
	}
	if got := g.RightCount(); got != 0 {
		t.Errorf("RightCount = %d; want 0", got)
	}
	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount = %d; want 0", got)
	}
}

// TestNew_DuplicateIdempotent verifies that inserting the same edge twice
// has no additional effect.
func TestNew_DuplicateIdempotent(t *testing.T) {
	g := bgraph.New([]bgraph.Edge[int]{{0, 1}, {0, 1}})
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1", got)
	}
	if got := g.Degree(0); got != 1 {
		t.Errorf("Degree(0) = %d; want 1", got)
	}
	if got := g.Degree(1); got != 1 {
		t.Errorf("Degree(1) = %d; want 1", got)
	}
}

// TestNew_SymmetricAdjacency verifies that each edge is visible from both
// endpoints.
func TestNew_SymmetricAdjacency(t *testing.T) {
	g := bgraph.New([]bgraph.Edge[string]{{"a", "x"}, {"a", "y"}, {"b", "y"}})

	if !g.HasEdge("a", "x") || !g.HasEdge("x", "a") {
		t.Error("edge a↔x must be visible from both sides")
	}
	if got := g.Degree("a"); got != 2 {
		t.Errorf("Degree(a) = %d; want 2", got)
	}
	if got := g.Degree("y"); got != 2 {
		t.Errorf("Degree(y) = %d; want 2", got)
	}
	if got := g.Neighbors("b"); len(got) != 1 || got[0] != "y" {
		t.Errorf("Neighbors(b) = %v; want [y]", got)
	}
	if got := g.Neighbors("missing"); got != nil {
		t.Errorf("Neighbors(missing) = %v; want nil", got)
	}
}

// TestNew_SideByPosition verifies that partition membership is taken
// strictly from edge position.
func TestNew_SideByPosition(t *testing.T) {
	g := bgraph.New([]bgraph.Edge[int]{{0, 10}, {1, 10}})

	if !g.HasLeft(0) || !g.HasLeft(1) {
		t.Error("0 and 1 must be left vertices")
	}
	if !g.HasRight(10) {
		t.Error("10 must be a right vertex")
	}
	if g.HasRight(0) || g.HasLeft(10) {
		t.Error("side membership leaked across the partition")
	}
	if got := g.LeftCount(); got != 2 {
		t.Errorf("LeftCount = %d; want 2", got)
	}
	if got := g.RightCount(); got != 1 {
		t.Errorf("RightCount = %d; want 1", got)
	}
}

// TestNewStrict_Valid verifies that a well-formed edge list passes the
// bipartite check.
func TestNewStrict_Valid(t *testing.T) {
	g, err := bgraph.NewStrict([]bgraph.Edge[int]{{0, 10}, {1, 11}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount = %d; want 2", got)
	}
}

// TestNewStrict_NotBipartite verifies that reusing a label on both sides
// is rejected. The check is global over the whole edge list, not per edge.
func TestNewStrict_NotBipartite(t *testing.T) {
	_, err := bgraph.NewStrict([]bgraph.Edge[int]{{0, 1}, {0, 2}, {1, 2}})
	if !errors.Is(err, bgraph.ErrNotBipartite) {
		t.Errorf("want ErrNotBipartite, got %v", err)
	}
}

// TestVertexSlices verifies the partition snapshots cover exactly the
// vertices seen on each side.
func TestVertexSlices(t *testing.T) {
	g := bgraph.New([]bgraph.Edge[int]{{0, 10}, {1, 11}, {2, 11}})

	lefts := g.LeftVertices()
	if len(lefts) != 3 {
		t.Fatalf("len(LeftVertices) = %d; want 3", len(lefts))
	}
	for _, u := range lefts {
		if !g.HasLeft(u) {
			t.Errorf("LeftVertices returned non-left vertex %d", u)
		}
	}

	rights := g.RightVertices()
	if len(rights) != 2 {
		t.Fatalf("len(RightVertices) = %d; want 2", len(rights))
	}
	for _, v := range rights {
		if !g.HasRight(v) {
			t.Errorf("RightVertices returned non-right vertex %d", v)
		}
	}
}

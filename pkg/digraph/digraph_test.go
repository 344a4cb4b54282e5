package digraph

import (
	"slices"
	"testing"
)

func TestAddEdge_CreatesVertices(t *testing.T) {
	g := New[string]()
	g.AddEdge("a", "b")

	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
	if !g.HasVertex("a") || !g.HasVertex("b") {
		t.Errorf("HasVertex() missing endpoint: a=%v b=%v", g.HasVertex("a"), g.HasVertex("b"))
	}
	if !g.HasEdge("a", "b") {
		t.Error("HasEdge(a, b) = false, want true")
	}
	if g.HasEdge("b", "a") {
		t.Error("HasEdge(b, a) = true, want false")
	}
}

func TestAddVertex_Isolated(t *testing.T) {
	g := New[string]()
	g.AddVertex("a")
	g.AddVertex("a")

	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if !g.HasVertex("a") {
		t.Error("HasVertex(a) = false, want true")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}

	// Isolated vertices participate in ordering and cloning.
	g.AddEdge("b", "c")
	want := []string{"a", "b", "c"}
	if !slices.Equal(g.Vertices(), want) {
		t.Errorf("Vertices() = %v, want %v", g.Vertices(), want)
	}
	if c := g.Clone(); !c.HasVertex("a") {
		t.Error("Clone() dropped an isolated vertex")
	}
}

func TestAddEdge_DuplicateIsNoOp(t *testing.T) {
	g := New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if n := g.Neighbors("a"); len(n) != 1 {
		t.Errorf("Neighbors(a) = %v, want [b]", n)
	}
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := New[string]()
	g.AddEdge("a", "a")

	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if !g.HasEdge("a", "a") {
		t.Error("HasEdge(a, a) = false, want true")
	}
}

func TestVertices_Sorted(t *testing.T) {
	g := New[string]()
	g.AddEdge("c", "a")
	g.AddEdge("b", "c")

	got := g.Vertices()
	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Vertices() = %v, want %v", got, want)
	}
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := New[string]()
	g.AddEdge("a", "c")
	g.AddEdge("a", "b")
	g.AddEdge("a", "d")

	got := g.Neighbors("a")
	want := []string{"c", "b", "d"}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors(a) = %v, want %v", got, want)
	}
}

func TestNeighbors_Unknown(t *testing.T) {
	g := New[string]()
	if n := g.Neighbors("ghost"); n != nil {
		t.Errorf("Neighbors(ghost) = %v, want nil", n)
	}
}

func TestMin(t *testing.T) {
	g := New[int]()
	if _, ok := g.Min(); ok {
		t.Error("Min() on empty graph reported a vertex")
	}

	g.AddEdge(7, 3)
	g.AddEdge(3, 9)

	min, ok := g.Min()
	if !ok || min != 3 {
		t.Errorf("Min() = %d, %v, want 3, true", min, ok)
	}
}

func TestEdges_Deterministic(t *testing.T) {
	g := New[string]()
	g.AddEdge("b", "a")
	g.AddEdge("a", "c")
	g.AddEdge("a", "b")

	got := g.Edges()
	want := []Edge[string]{
		{From: "a", To: "c"},
		{From: "a", To: "b"},
		{From: "b", To: "a"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestEdgeCount(t *testing.T) {
	g := New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
}

func TestClone_Independent(t *testing.T) {
	g := New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	c := g.Clone()
	c.AddEdge("b", "c")

	if g.HasVertex("c") {
		t.Error("mutating the clone changed the original")
	}
	if !c.HasEdge("a", "b") || !c.HasEdge("b", "a") {
		t.Error("clone is missing original edges")
	}
	if !slices.Equal(c.Neighbors("b"), []string{"a", "c"}) {
		t.Errorf("clone Neighbors(b) = %v, want [a c]", c.Neighbors("b"))
	}
}

func TestIntPayloads(t *testing.T) {
	g := New[int]()
	g.AddEdge(2, 1)
	g.AddEdge(1, 2)

	got := g.Vertices()
	want := []int{1, 2}
	if !slices.Equal(got, want) {
		t.Errorf("Vertices() = %v, want %v", got, want)
	}
}

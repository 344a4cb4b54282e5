package digraph

import (
	"cmp"
	"maps"
	"slices"
)

// Edge is a directed connection between two vertices, identified by their
// payloads.
type Edge[P cmp.Ordered] struct {
	From P
	To   P
}

// Digraph is a directed graph over payloads of a totally-ordered type.
//
// The payload is the vertex identity: adjacency is keyed by payload, so two
// distinct vertices can never compare equal. Vertices are created explicitly
// with AddVertex or implicitly as edge endpoints. Cycles and self-loops are
// allowed.
//
// The zero value is not usable - use New to create a valid instance.
// Digraph is not safe for concurrent mutation without external
// synchronization; read-only use from multiple goroutines is fine.
type Digraph[P cmp.Ordered] struct {
	out  map[P][]P            // payload -> outgoing neighbors, insertion order
	seen map[P]map[P]struct{} // edge membership, keeps AddEdge idempotent
}

// New creates an empty directed graph.
func New[P cmp.Ordered]() *Digraph[P] {
	return &Digraph[P]{
		out:  make(map[P][]P),
		seen: make(map[P]map[P]struct{}),
	}
}

// AddVertex inserts v as a vertex with no edges. Adding a vertex that is
// already present is a no-op.
func (g *Digraph[P]) AddVertex(v P) {
	if _, ok := g.out[v]; !ok {
		g.out[v] = nil
	}
}

// AddEdge inserts the directed edge from→to, creating either endpoint if it
// is not yet present. Inserting an edge that already exists is a no-op, so
// a neighbor never appears twice in an adjacency list. Self-loops (from ==
// to) are valid edges.
func (g *Digraph[P]) AddEdge(from, to P) {
	g.AddVertex(from)
	g.AddVertex(to)
	targets, ok := g.seen[from]
	if !ok {
		targets = make(map[P]struct{})
		g.seen[from] = targets
	}
	if _, dup := targets[to]; dup {
		return
	}
	targets[to] = struct{}{}
	g.out[from] = append(g.out[from], to)
}

// Vertices returns every vertex payload in ascending order.
// The returned slice is a copy and can be freely modified.
func (g *Digraph[P]) Vertices() []P {
	return slices.Sorted(maps.Keys(g.out))
}

// Neighbors returns the outgoing neighbors of v in edge-insertion order.
// Returns nil if v has no outgoing edges or is not in the graph. The
// returned slice should not be modified - use it as a read-only view.
func (g *Digraph[P]) Neighbors(v P) []P { return g.out[v] }

// Len returns the number of vertices in the graph.
func (g *Digraph[P]) Len() int { return len(g.out) }

// EdgeCount returns the number of distinct directed edges in the graph.
func (g *Digraph[P]) EdgeCount() int {
	n := 0
	for _, targets := range g.out {
		n += len(targets)
	}
	return n
}

// HasVertex reports whether v is a vertex of the graph.
func (g *Digraph[P]) HasVertex(v P) bool {
	_, ok := g.out[v]
	return ok
}

// HasEdge reports whether the directed edge from→to is present.
func (g *Digraph[P]) HasEdge(from, to P) bool {
	targets, ok := g.seen[from]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// Min returns the smallest vertex payload and true, or the zero payload and
// false when the graph is empty.
func (g *Digraph[P]) Min() (P, bool) {
	var min P
	if len(g.out) == 0 {
		return min, false
	}
	first := true
	for v := range g.out {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min, true
}

// Edges returns every edge, grouped by ascending source vertex with each
// source's targets in insertion order. The slice is a copy.
func (g *Digraph[P]) Edges() []Edge[P] {
	edges := make([]Edge[P], 0, g.EdgeCount())
	for _, from := range g.Vertices() {
		for _, to := range g.out[from] {
			edges = append(edges, Edge[P]{From: from, To: to})
		}
	}
	return edges
}

// Clone returns an independent copy of the graph with the same vertices,
// edges, and adjacency order.
func (g *Digraph[P]) Clone() *Digraph[P] {
	c := New[P]()
	for v, targets := range g.out {
		c.AddVertex(v)
		for _, w := range targets {
			c.AddEdge(v, w)
		}
	}
	return c
}

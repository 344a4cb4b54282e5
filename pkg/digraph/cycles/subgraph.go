package cycles

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/digraph/scc"
)

// minSCC selects, among the strongly connected components of g that could
// still host a qualifying circuit, the one whose smallest vertex is least,
// and returns it as an induced subgraph. An empty graph is returned when no
// component qualifies; that is the enumeration's termination signal, not an
// error.
//
// A component qualifies when it has at least minLen vertices and is not an
// acyclic singleton: a single vertex can only host a circuit via a
// self-loop, while a component of two or more mutually-reachable vertices
// always contains one.
func minSCC[P cmp.Ordered](g *digraph.Digraph[P], minLen int) (*digraph.Digraph[P], error) {
	if g == nil {
		return nil, fmt.Errorf("select component: %w", ErrInvalidState)
	}

	var best []P
	var bestMin P
	for _, comp := range scc.Decompose(g) {
		if len(comp) < minLen {
			continue
		}
		if len(comp) == 1 && !g.HasEdge(comp[0], comp[0]) {
			continue
		}
		m := slices.Min(comp)
		if best == nil || m < bestMin {
			best, bestMin = comp, m
		}
	}
	if best == nil {
		return digraph.New[P](), nil
	}
	return induced(g, best)
}

// induced returns the subgraph of g containing only the given vertices and
// the edges running between them.
func induced[P cmp.Ordered](g *digraph.Digraph[P], verts []P) (*digraph.Digraph[P], error) {
	if g == nil || verts == nil {
		return nil, fmt.Errorf("induce subgraph: %w", ErrInvalidState)
	}

	keep := make(map[P]struct{}, len(verts))
	for _, v := range verts {
		keep[v] = struct{}{}
	}
	sub := digraph.New[P]()
	for _, v := range verts {
		for _, w := range g.Neighbors(v) {
			if _, ok := keep[w]; ok {
				sub.AddEdge(v, w)
			}
		}
	}
	return sub, nil
}

// restrictAbove returns the subgraph of g induced by vertices strictly
// greater than ref; a nil ref keeps every vertex. Edges survive only when
// both endpoints do, so vertices left without any edge are absent from the
// result.
func restrictAbove[P cmp.Ordered](g *digraph.Digraph[P], ref *P) (*digraph.Digraph[P], error) {
	if g == nil {
		return nil, fmt.Errorf("restrict graph: %w", ErrInvalidState)
	}

	keep := func(v P) bool { return ref == nil || v > *ref }
	sub := digraph.New[P]()
	for _, v := range g.Vertices() {
		if !keep(v) {
			continue
		}
		for _, w := range g.Neighbors(v) {
			if keep(w) {
				sub.AddEdge(v, w)
			}
		}
	}
	return sub, nil
}

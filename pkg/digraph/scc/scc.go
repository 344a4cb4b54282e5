// Package scc decomposes a directed graph into its strongly connected
// components using Tarjan's algorithm.
package scc

import (
	"cmp"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
)

// Decompose partitions g into maximal strongly-connected vertex groups.
// Every vertex appears in exactly one component; acyclic vertices form
// singleton components. Roots are visited in ascending vertex order, so the
// result is deterministic for a given graph: components are emitted in
// completion order (reverse topological between components) with each
// component's vertices in stack-pop order.
func Decompose[P cmp.Ordered](g *digraph.Digraph[P]) [][]P {
	t := &tarjan[P]{
		g:       g,
		index:   make(map[P]int, g.Len()),
		lowlink: make(map[P]int, g.Len()),
		onStack: make(map[P]bool, g.Len()),
	}
	for _, v := range g.Vertices() {
		if _, visited := t.index[v]; !visited {
			t.strongConnect(v)
		}
	}
	return t.comps
}

type tarjan[P cmp.Ordered] struct {
	g       *digraph.Digraph[P]
	next    int
	index   map[P]int
	lowlink map[P]int
	stack   []P
	onStack map[P]bool
	comps   [][]P
}

func (t *tarjan[P]) strongConnect(v P) {
	t.index[v] = t.next
	t.lowlink[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.Neighbors(v) {
		if _, visited := t.index[w]; !visited {
			t.strongConnect(w)
			t.lowlink[v] = min(t.lowlink[v], t.lowlink[w])
		} else if t.onStack[w] {
			t.lowlink[v] = min(t.lowlink[v], t.index[w])
		}
	}

	// v roots a component once no vertex on the stack above it can reach
	// an earlier index.
	if t.lowlink[v] == t.index[v] {
		var comp []P
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.comps = append(t.comps, comp)
	}
}

// Package digraph provides the directed-graph container used throughout
// circuitry.
//
// # Overview
//
// A [Digraph] maps vertex payloads to their outgoing neighbors. The payload
// type is generic over [cmp.Ordered], and the payload itself is the vertex
// identity - there is no separate handle or index. This gives every graph a
// total vertex order for free, which the circuit enumeration in
// [cycles] depends on.
//
// # Basic Usage
//
// Create a graph with [New] and insert edges with [Digraph.AddEdge].
// Vertices are created implicitly as edge endpoints (or explicitly with
// [Digraph.AddVertex]); inserting a duplicate edge is a no-op:
//
//	g := digraph.New[string]()
//	g.AddEdge("app", "lib")
//	g.AddEdge("lib", "app") // cycles are fine
//	g.AddEdge("app", "lib") // no-op
//
// Inspect the graph with [Digraph.Vertices], [Digraph.Neighbors],
// [Digraph.Edges] and the counting helpers.
//
// # Determinism
//
// [Digraph.Vertices] and [Digraph.Edges] report vertices in ascending
// payload order, and [Digraph.Neighbors] preserves edge-insertion order.
// Algorithms that traverse a graph in these orders produce identical
// results across runs.
//
// # Related Packages
//
// [scc] decomposes a Digraph into strongly connected components, and
// [cycles] enumerates its elementary circuits.
//
// [scc]: github.com/gregorio-gerardi/circuitry/pkg/digraph/scc
// [cycles]: github.com/gregorio-gerardi/circuitry/pkg/digraph/cycles
package digraph

// Package cycles enumerates the elementary circuits of a directed graph.
//
// # Overview
//
// An elementary circuit is a cycle that visits no vertex twice except for
// the implicit return to its starting point. This package implements
// Johnson's algorithm (D. B. Johnson, "Finding All the Elementary Circuits
// of a Directed Graph", SIAM J. Comput. 4(1), 1975), which achieves
// output-sensitive running time: O((V+E)(C+1)) for C circuits, by blocking
// vertices that cannot currently extend a circuit and unblocking them only
// when a neighbor later participates in one.
//
// The enumeration proceeds root by root. Each round decomposes the
// remaining graph into strongly connected components (via [scc]), selects
// the component containing the smallest vertex that can still host a
// circuit, and runs a blocking depth-first search rooted at that vertex.
// The graph is then restricted to strictly larger vertices and the round
// repeats. Because every circuit is discovered exactly when its own
// smallest member is the root, each circuit is reported exactly once.
//
// # Usage
//
// Enumerate every circuit, or only those within a length range:
//
//	g := digraph.New[string]()
//	g.AddEdge("a", "b")
//	g.AddEdge("b", "a")
//
//	all, err := cycles.Find(ctx, g)
//	long, err := cycles.FindWithin(ctx, g, 3, cycles.NoMaxLimit)
//
// Each circuit is an ordered payload slice beginning at its smallest
// vertex, with the closing edge back to the first element implied. A
// self-loop yields a circuit of length one.
//
// # Determinism
//
// Results are fully deterministic: roots are processed in ascending order,
// neighbors are explored in edge-insertion order, and circuits appear in
// discovery order. Two calls with the same graph and bounds return
// identical slices.
//
// # Cancellation
//
// Circuit counts can grow exponentially with graph size. The search checks
// the caller's context between neighbor visits; cancelling the context
// aborts the call with the context's error and no partial result. Callers
// needing bounded work should pass length bounds, a deadline, or both.
//
// [scc]: github.com/gregorio-gerardi/circuitry/pkg/digraph/scc
package cycles

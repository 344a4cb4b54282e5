package render

import (
	"bytes"
	"fmt"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
)

// Options configures DOT generation.
type Options struct {
	// RankDir sets the layout direction: TB, LR, BT or RL.
	// Empty means TB.
	RankDir string

	// Label is an optional caption drawn under the graph.
	Label string

	// Highlight lists circuits whose vertices and edges are emphasized.
	// Every consecutive pair in a circuit, plus the closing edge back to
	// the first vertex, is drawn in red. A single-vertex circuit
	// highlights its self-loop.
	Highlight [][]string
}

// ToDOT converts a directed graph to Graphviz DOT format.
// The resulting DOT string can be rendered with [SVG] or [PNG].
//
// Output is deterministic: nodes appear in ascending ID order and edges in
// the graph's canonical edge order, so equal graphs with equal options
// produce identical DOT text.
func ToDOT(g *digraph.Digraph[string], opts Options) string {
	hotVerts, hotEdges := highlighted(opts.Highlight)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "TB"
	}
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	if opts.Label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Label)
		buf.WriteString("  labelloc=b;\n")
	}
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		if hotVerts[v] {
			fmt.Fprintf(&buf, "  %q [fillcolor=mistyrose, color=red];\n", v)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", v)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if hotEdges[e] {
			fmt.Fprintf(&buf, "  %q -> %q [color=red, penwidth=2.0];\n", e.From, e.To)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// highlighted collects the vertices and edges covered by the given circuits.
func highlighted(circuits [][]string) (map[string]bool, map[digraph.Edge[string]]bool) {
	verts := make(map[string]bool)
	edges := make(map[digraph.Edge[string]]bool)
	for _, c := range circuits {
		if len(c) == 0 {
			continue
		}
		for i, v := range c {
			verts[v] = true
			next := c[(i+1)%len(c)]
			edges[digraph.Edge[string]{From: v, To: next}] = true
		}
	}
	return verts, edges
}

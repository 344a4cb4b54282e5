// Package render turns directed graphs into Graphviz DOT text and rendered
// images.
//
// # Overview
//
// Rendering is a two-step process:
//
//  1. [ToDOT] converts a graph to DOT text, optionally highlighting the
//     circuits found by an analysis. DOT output is deterministic, which
//     makes it safe to hash for cache keys.
//  2. [SVG] and [PNG] rasterize DOT text with the embedded Graphviz engine.
//     No external graphviz installation is required.
//
// # Highlighting
//
// Pass the circuits to emphasize via [Options].Highlight. Vertices on a
// circuit are filled and outlined in red, and every circuit edge (including
// the closing edge back to the first vertex, and self-loops) is drawn in
// red with a heavier pen:
//
//	dot := render.ToDOT(g, render.Options{Highlight: circuits})
//	svg, err := render.SVG(ctx, dot)
package render

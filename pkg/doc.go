// Package pkg provides the core libraries for Circuitry circuit analysis.
//
// # Overview
//
// Circuitry enumerates the elementary circuits (simple cycles) of directed
// graphs using Johnson's algorithm. The pkg directory is organized into
// three main areas:
//
//  1. [digraph] - Graph structure and algorithms (SCCs, circuit search)
//  2. [graphio], [manifest], [render], [report] - Input and output formats
//  3. [pipeline], [cache], [errors], [observability] - Orchestration
//
// # Architecture
//
// The typical data flow through Circuitry:
//
//	Graph document / Dependency manifest
//	         ↓
//	[graphio] or [manifest] (parse into a digraph)
//	         ↓
//	[digraph/cycles] (enumerate circuits within length bounds)
//	         ↓
//	[report] (assemble the analysis record)
//	         ↓
//	[render] (DOT / SVG / PNG with circuits highlighted)
//
// The [pipeline] package ties the stages together and caches the search
// and render results by content hash. The [cache], [errors], and
// [observability] packages provide the shared infrastructure the stages
// build on.
//
// # Quick Start
//
// Enumerate the circuits of a graph and render them:
//
//	import (
//	    "context"
//	    "github.com/gregorio-gerardi/circuitry/pkg/graphio"
//	    "github.com/gregorio-gerardi/circuitry/pkg/digraph/cycles"
//	    "github.com/gregorio-gerardi/circuitry/pkg/render"
//	)
//
//	// 1. Load the graph
//	g, _ := graphio.ReadFile("graph.json")
//
//	// 2. Enumerate elementary circuits
//	circuits, _ := cycles.Find(context.Background(), g)
//
//	// 3. Render with the circuits highlighted
//	dot := render.ToDOT(g, render.Options{Highlight: circuits})
//	svg, _ := render.SVG(context.Background(), dot)
//
// The entry points live outside pkg: internal/cli implements the
// command-line interface and internal/server the HTTP API. Both drive the
// same [pipeline.Runner].
package pkg

// Package graphio provides JSON import and export for directed graphs.
//
// # Overview
//
// This package enables serialization of graphs to and from a simple JSON
// format. The format is designed for:
//
//   - Describing any directed graph, not just dependency graphs
//   - Integration with external tools that produce or consume graph data
//   - Embedding graphs in analysis reports and API payloads
//   - Round-trip preservation: import, analyze, export, and re-import identically
//
// # JSON Format
//
// The format has two top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": "app"},
//	    {"id": "lib-a"},
//	    {"id": "lib-b"}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "lib-a"},
//	    {"from": "lib-a", "to": "app"}
//	  ]
//	}
//
// Each node needs a unique "id", which doubles as the display label. Edge
// endpoints that are not listed under "nodes" are created implicitly, so a
// document may consist of edges alone. Cycles and self-loops are valid;
// circuit enumeration is the whole point.
//
// # Import
//
// Use [ReadFile] to read a graph from a file path, or [Read] to read from
// any io.Reader:
//
//	g, err := graphio.ReadFile("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate node IDs and reject duplicates. Errors carry
// machine-readable codes from the errors package.
//
// # Export
//
// Use [WriteFile] to write a graph to a file, or [Write] to write to any
// io.Writer:
//
//	err := graphio.WriteFile(g, "output.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Exports are deterministic: nodes appear in ascending ID order and edges in
// the graph's canonical edge order, so equal graphs produce byte-identical
// documents. This property is what makes content-hash cache keys work.
//
// # Document Form
//
// [Doc] is the decoded document and is exported for callers that embed
// graphs in larger payloads (stored reports, API request bodies). Convert
// between documents and graphs with [FromDoc] and [ToDoc].
package graphio

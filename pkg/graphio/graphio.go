package graphio

import (
	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

// Doc is the document form of a directed graph. It is the wire format for
// JSON files and API payloads, and the persisted form inside stored reports.
type Doc struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is a single vertex entry. The ID doubles as the display label.
type Node struct {
	ID string `json:"id" bson:"id"`
}

// Edge is a directed connection between two node IDs.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// FromDoc builds a directed graph from a document.
//
// Every node ID and edge endpoint is validated, duplicate node entries are
// rejected, and edge endpoints that were not listed as nodes are created
// implicitly. FromDoc returns an error with code INVALID_VERTEX for bad IDs
// and INVALID_INPUT for duplicate nodes.
func FromDoc(doc Doc) (*digraph.Digraph[string], error) {
	g := digraph.New[string]()

	for i, n := range doc.Nodes {
		if err := errors.ValidateVertexID(n.ID); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "node %d", i)
		}
		if g.HasVertex(n.ID) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate node id: %q", n.ID)
		}
		g.AddVertex(n.ID)
	}

	for _, e := range doc.Edges {
		if err := errors.ValidateVertexID(e.From); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "edge %s->%s", e.From, e.To)
		}
		if err := errors.ValidateVertexID(e.To); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "edge %s->%s", e.From, e.To)
		}
		g.AddEdge(e.From, e.To)
	}

	return g, nil
}

// ToDoc converts a directed graph to its document form. Nodes appear in
// ascending ID order and edges in the graph's deterministic edge order, so
// equal graphs produce byte-identical documents.
func ToDoc(g *digraph.Digraph[string]) Doc {
	doc := Doc{
		Nodes: make([]Node, 0, g.Len()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for _, v := range g.Vertices() {
		doc.Nodes = append(doc.Nodes, Node{ID: v})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To})
	}
	return doc
}

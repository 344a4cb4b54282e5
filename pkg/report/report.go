// Package report defines the analysis report model and its storage backends.
//
// A [Report] is the durable record of one circuit analysis: the input graph,
// the length bounds, every circuit found, and summary statistics. Reports are
// identified by UUID and persisted through the [Store] interface, with
// implementations for different backends:
//   - memory: In-process storage for development, testing and the CLI
//   - mongo: MongoDB-backed storage for server deployments
//
// # Usage
//
// Assemble and store a report:
//
//	r := report.New("graph.json", g, bounds, circuits, elapsed)
//	if err := store.Save(ctx, r); err != nil {
//	    return err
//	}
//
// Retrieve it later:
//
//	r, err := store.Get(ctx, id)
//	if errors.Is(err, report.ErrNotFound) {
//	    // No such report
//	}
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/graphio"
)

// Bounds are the inclusive circuit-length limits an analysis ran with.
// The sentinel values from the cycles package mean "unbounded".
type Bounds struct {
	MinLength int `json:"min_length" bson:"min_length"`
	MaxLength int `json:"max_length" bson:"max_length"`
}

// Stats summarizes an analysis run.
type Stats struct {
	VertexCount  int           `json:"vertex_count" bson:"vertex_count"`
	EdgeCount    int           `json:"edge_count" bson:"edge_count"`
	CircuitCount int           `json:"circuit_count" bson:"circuit_count"`
	Duration     time.Duration `json:"duration_ns" bson:"duration_ns"`
}

// Report is a completed circuit analysis.
type Report struct {
	ID        string      `json:"id" bson:"_id"`
	Source    string      `json:"source" bson:"source"`
	Graph     graphio.Doc `json:"graph" bson:"graph"`
	Bounds    Bounds      `json:"bounds" bson:"bounds"`
	Circuits  [][]string  `json:"circuits" bson:"circuits"`
	Stats     Stats       `json:"stats" bson:"stats"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

// New assembles a report for a finished search. The source names where the
// graph came from (a file path, manifest type, or "api").
func New(source string, g *digraph.Digraph[string], bounds Bounds, circuits [][]string, elapsed time.Duration) *Report {
	return &Report{
		ID:       uuid.NewString(),
		Source:   source,
		Graph:    graphio.ToDoc(g),
		Bounds:   bounds,
		Circuits: circuits,
		Stats: Stats{
			VertexCount:  g.Len(),
			EdgeCount:    g.EdgeCount(),
			CircuitCount: len(circuits),
			Duration:     elapsed,
		},
		CreatedAt: time.Now().UTC(),
	}
}

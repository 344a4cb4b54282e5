package graphio

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

func TestRead(t *testing.T) {
	input := `{
		"nodes": [{"id": "a"}, {"id": "b"}, {"id": "isolated"}],
		"edges": [{"from": "a", "to": "b"}, {"from": "b", "to": "a"}]
	}`

	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	want := []string{"a", "b", "isolated"}
	if !slices.Equal(g.Vertices(), want) {
		t.Errorf("Vertices() = %v, want %v", g.Vertices(), want)
	}
	if !g.HasEdge("a", "b") || !g.HasEdge("b", "a") {
		t.Error("Read() dropped edges")
	}
}

func TestRead_EdgesImplyNodes(t *testing.T) {
	// A document of edges alone is valid; endpoints become vertices.
	input := `{"edges": [{"from": "x", "to": "y"}, {"from": "y", "to": "x"}]}`

	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	want := []string{"x", "y"}
	if !slices.Equal(g.Vertices(), want) {
		t.Errorf("Vertices() = %v, want %v", g.Vertices(), want)
	}
}

func TestRead_MalformedJSON(t *testing.T) {
	_, err := Read(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("Read() of malformed JSON should fail")
	}
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("Read() error code = %v, want PARSE_ERROR", errors.GetCode(err))
	}
}

func TestRead_EmptyNodeID(t *testing.T) {
	input := `{"nodes": [{"id": ""}]}`

	_, err := Read(strings.NewReader(input))
	if err == nil {
		t.Fatal("Read() with empty node id should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidVertex) {
		t.Errorf("Read() error code = %v, want INVALID_VERTEX", errors.GetCode(err))
	}
}

func TestRead_EmptyEdgeEndpoint(t *testing.T) {
	input := `{"edges": [{"from": "a", "to": ""}]}`

	_, err := Read(strings.NewReader(input))
	if err == nil {
		t.Fatal("Read() with empty edge endpoint should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidVertex) {
		t.Errorf("Read() error code = %v, want INVALID_VERTEX", errors.GetCode(err))
	}
}

func TestRead_DuplicateNodeID(t *testing.T) {
	input := `{"nodes": [{"id": "a"}, {"id": "a"}]}`

	_, err := Read(strings.NewReader(input))
	if err == nil {
		t.Fatal("Read() with duplicate node id should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Read() error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestWrite_Deterministic(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("b", "a")
	g.AddEdge("a", "b")
	g.AddVertex("z")

	var first, second bytes.Buffer
	if err := Write(g, &first); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := Write(g, &second); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if first.String() != second.String() {
		t.Error("Write() output differs between calls")
	}

	// Nodes are sorted by ID regardless of insertion order.
	doc := ToDoc(g)
	wantNodes := []Node{{ID: "a"}, {ID: "b"}, {ID: "z"}}
	if !slices.Equal(doc.Nodes, wantNodes) {
		t.Errorf("ToDoc() nodes = %v, want %v", doc.Nodes, wantNodes)
	}
}

func TestRoundTrip(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")
	g.AddEdge("c", "c")
	g.AddVertex("lonely")

	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if !slices.Equal(back.Vertices(), g.Vertices()) {
		t.Errorf("round-trip vertices = %v, want %v", back.Vertices(), g.Vertices())
	}
	if !slices.Equal(back.Edges(), g.Edges()) {
		t.Errorf("round-trip edges = %v, want %v", back.Edges(), g.Edges())
	}
}

func TestReadFileWriteFile(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteFile(g, path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !slices.Equal(back.Edges(), g.Edges()) {
		t.Errorf("ReadFile() edges = %v, want %v", back.Edges(), g.Edges())
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "no-such-file.json"))
	if err == nil {
		t.Fatal("ReadFile() of missing file should fail")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile() error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
)

func triangle() *digraph.Digraph[string] {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")
	return g
}

func newTriangleReport(source string) *Report {
	return New(source, triangle(), Bounds{MinLength: -1, MaxLength: 10}, [][]string{{"a", "b", "c"}}, time.Millisecond)
}

func TestNew(t *testing.T) {
	r := newTriangleReport("graph.json")

	if r.ID == "" {
		t.Error("ID is empty")
	}
	if r.Source != "graph.json" {
		t.Errorf("Source = %q, want graph.json", r.Source)
	}
	if r.Stats.VertexCount != 3 || r.Stats.EdgeCount != 3 || r.Stats.CircuitCount != 1 {
		t.Errorf("Stats = %+v, want 3/3/1", r.Stats)
	}
	if len(r.Graph.Nodes) != 3 || len(r.Graph.Edges) != 3 {
		t.Errorf("Graph doc has %d nodes and %d edges, want 3 and 3", len(r.Graph.Nodes), len(r.Graph.Edges))
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}

	// Each report gets its own identity.
	if other := newTriangleReport("graph.json"); other.ID == r.ID {
		t.Error("two reports share an ID")
	}
}

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	r := newTriangleReport("a.json")
	if err := store.Save(ctx, r); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := store.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.ID != r.ID || got.Source != r.Source {
		t.Errorf("Get() = %+v, want saved report", got)
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	r := newTriangleReport("before.json")
	if err := store.Save(ctx, r); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	r2 := newTriangleReport("after.json")
	r2.ID = r.ID
	if err := store.Save(ctx, r2); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := store.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Source != "after.json" {
		t.Errorf("Source = %q, want after.json", got.Source)
	}

	list, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d reports after replace, want 1", len(list))
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sources := []string{"first.json", "second.json", "third.json"}
	for _, src := range sources {
		if err := store.Save(ctx, newTriangleReport(src)); err != nil {
			t.Fatalf("Save(%s) error: %v", src, err)
		}
	}

	list, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d reports, want 3", len(list))
	}
	for i, want := range []string{"third.json", "second.json", "first.json"} {
		if list[i].Source != want {
			t.Errorf("list[%d].Source = %q, want %q", i, list[i].Source, want)
		}
	}
}

func TestMemoryStoreListLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 0; i < 5; i++ {
		if err := store.Save(ctx, newTriangleReport("g.json")); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}

	list, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("got %d reports, want 2", len(list))
	}
}

func TestMemoryStoreClose(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Close(context.Background()); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

package cycles

import (
	"errors"
	"slices"
	"testing"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
)

func TestMinSCC_PicksComponentWithSmallestVertex(t *testing.T) {
	// Two cycles; the component holding "a" wins even though c↔d was
	// inserted first.
	g := digraph.New[string]()
	g.AddEdge("c", "d")
	g.AddEdge("d", "c")
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	sub, err := minSCC(g, NoMinLimit)
	if err != nil {
		t.Fatalf("minSCC() error: %v", err)
	}

	want := []string{"a", "b"}
	if !slices.Equal(sub.Vertices(), want) {
		t.Errorf("minSCC() vertices = %v, want %v", sub.Vertices(), want)
	}
}

func TestMinSCC_SkipsAcyclicSingletons(t *testing.T) {
	// "a" is smallest but cannot host a circuit; selection must move past it.
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "b")

	sub, err := minSCC(g, NoMinLimit)
	if err != nil {
		t.Fatalf("minSCC() error: %v", err)
	}

	want := []string{"b", "c"}
	if !slices.Equal(sub.Vertices(), want) {
		t.Errorf("minSCC() vertices = %v, want %v", sub.Vertices(), want)
	}
}

func TestMinSCC_KeepsSelfLoopSingleton(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "a")
	g.AddEdge("b", "c")
	g.AddEdge("c", "b")

	sub, err := minSCC(g, NoMinLimit)
	if err != nil {
		t.Fatalf("minSCC() error: %v", err)
	}

	if !slices.Equal(sub.Vertices(), []string{"a"}) || !sub.HasEdge("a", "a") {
		t.Errorf("minSCC() = vertices %v, want the self-looped singleton [a]", sub.Vertices())
	}
}

func TestMinSCC_SizeThreshold(t *testing.T) {
	// A 2-cycle cannot host circuits of length 3, so it is filtered out
	// and the triangle is selected despite its larger minimum vertex.
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	g.AddEdge("x", "y")
	g.AddEdge("y", "z")
	g.AddEdge("z", "x")

	sub, err := minSCC(g, 3)
	if err != nil {
		t.Fatalf("minSCC() error: %v", err)
	}

	want := []string{"x", "y", "z"}
	if !slices.Equal(sub.Vertices(), want) {
		t.Errorf("minSCC(min=3) vertices = %v, want %v", sub.Vertices(), want)
	}
}

func TestMinSCC_NoQualifyingComponent(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	sub, err := minSCC(g, NoMinLimit)
	if err != nil {
		t.Fatalf("minSCC() error: %v", err)
	}

	if sub.Len() != 0 {
		t.Errorf("minSCC() on acyclic graph = %v, want empty graph", sub.Vertices())
	}
}

func TestMinSCC_NilGraph(t *testing.T) {
	if _, err := minSCC[string](nil, NoMinLimit); !errors.Is(err, ErrInvalidState) {
		t.Errorf("minSCC(nil) error = %v, want ErrInvalidState", err)
	}
}

func TestMinSCC_OnlyComponentEdgesSurvive(t *testing.T) {
	// The selected component {a,b} must not keep b→c, which leaves it.
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	g.AddEdge("b", "c")

	sub, err := minSCC(g, NoMinLimit)
	if err != nil {
		t.Fatalf("minSCC() error: %v", err)
	}

	if sub.HasVertex("c") || sub.HasEdge("b", "c") {
		t.Errorf("minSCC() leaked the outbound edge b→c: vertices %v", sub.Vertices())
	}
	if !sub.HasEdge("a", "b") || !sub.HasEdge("b", "a") {
		t.Errorf("minSCC() dropped component edges: %v", sub.Edges())
	}
}

func TestInduced_NilInputs(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")

	if _, err := induced[string](nil, []string{"a"}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("induced(nil graph) error = %v, want ErrInvalidState", err)
	}
	if _, err := induced(g, nil); !errors.Is(err, ErrInvalidState) {
		t.Errorf("induced(nil vertices) error = %v, want ErrInvalidState", err)
	}
}

func TestRestrictAbove_StrictlyGreater(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "b")
	g.AddEdge("c", "d")

	ref := "b"
	sub, err := restrictAbove(g, &ref)
	if err != nil {
		t.Fatalf("restrictAbove() error: %v", err)
	}

	// Only c→d survives; b itself and every edge touching a or b are gone.
	want := []string{"c", "d"}
	if !slices.Equal(sub.Vertices(), want) {
		t.Errorf("restrictAbove(b) vertices = %v, want %v", sub.Vertices(), want)
	}
	if sub.HasVertex("b") {
		t.Error("restrictAbove(b) kept the reference vertex")
	}
}

func TestRestrictAbove_NilReferenceKeepsEverything(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	sub, err := restrictAbove(g, nil)
	if err != nil {
		t.Fatalf("restrictAbove() error: %v", err)
	}

	if !slices.Equal(sub.Vertices(), g.Vertices()) {
		t.Errorf("restrictAbove(nil) vertices = %v, want %v", sub.Vertices(), g.Vertices())
	}
}

func TestRestrictAbove_DropsIsolatedSurvivors(t *testing.T) {
	// "d" is greater than the reference but all its edges touch "a", so it
	// must not appear in the restriction.
	g := digraph.New[string]()
	g.AddEdge("d", "a")
	g.AddEdge("b", "c")
	g.AddEdge("c", "b")

	ref := "a"
	sub, err := restrictAbove(g, &ref)
	if err != nil {
		t.Fatalf("restrictAbove() error: %v", err)
	}

	if sub.HasVertex("d") {
		t.Errorf("restrictAbove(a) kept isolated vertex d: %v", sub.Vertices())
	}
	want := []string{"b", "c"}
	if !slices.Equal(sub.Vertices(), want) {
		t.Errorf("restrictAbove(a) vertices = %v, want %v", sub.Vertices(), want)
	}
}

func TestRestrictAbove_NilGraph(t *testing.T) {
	ref := "a"
	if _, err := restrictAbove[string](nil, &ref); !errors.Is(err, ErrInvalidState) {
		t.Errorf("restrictAbove(nil) error = %v, want ErrInvalidState", err)
	}
}

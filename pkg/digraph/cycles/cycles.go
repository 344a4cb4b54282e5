package cycles

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
)

const (
	// NoMinLimit disables the lower length bound: circuits of any length,
	// including single-vertex self-loops, are reported.
	NoMinLimit = -1

	// NoMaxLimit disables the upper length bound.
	NoMaxLimit = math.MaxInt
)

// ErrInvalidState is returned when an operation receives an absent graph or
// vertex list where one is structurally required. It signals misuse rather
// than a data condition: legitimately empty graphs and empty results are
// never errors. Check for it with errors.Is.
var ErrInvalidState = errors.New("cycles: invalid state")

// Find returns every elementary circuit of g, equivalent to FindWithin with
// both bounds disabled.
func Find[P cmp.Ordered](ctx context.Context, g *digraph.Digraph[P]) ([][]P, error) {
	return FindWithin(ctx, g, NoMinLimit, NoMaxLimit)
}

// FindWithin returns every elementary circuit of g whose length (vertex
// count) lies in [minLen, maxLen]. Pass NoMinLimit and NoMaxLimit to
// disable either bound.
//
// Each circuit is an ordered slice of vertex payloads starting at the
// circuit's smallest vertex; the closing edge back to the first element is
// implied and the start is not repeated. Circuits appear in discovery
// order, which is deterministic for a given graph and bounds. The input
// graph is never mutated.
//
// FindWithin returns ErrInvalidState (wrapped) when g is nil, and the
// context's error when ctx is cancelled mid-search; in both cases the
// returned slice is nil.
func FindWithin[P cmp.Ordered](ctx context.Context, g *digraph.Digraph[P], minLen, maxLen int) ([][]P, error) {
	if g == nil {
		return nil, fmt.Errorf("find circuits: %w", ErrInvalidState)
	}

	var circuits [][]P
	working, err := minSCC(g, minLen)
	if err != nil {
		return nil, err
	}
	for working.Len() > 0 {
		// The working graph is non-empty, so it has a minimum vertex. Every
		// circuit whose smallest member is this root lives in the working
		// component and is found by one blocked search.
		root, _ := working.Min()
		s := newSearch(working, root, minLen, maxLen)
		if _, err := s.circuit(ctx, root); err != nil {
			return nil, err
		}
		circuits = append(circuits, s.out...)

		// Strip the root and everything smaller from the original graph,
		// then select the next component. Roots strictly increase, so no
		// vertex roots twice and no circuit is reported twice.
		restricted, err := restrictAbove(g, &root)
		if err != nil {
			return nil, err
		}
		working, err = minSCC(restricted, minLen)
		if err != nil {
			return nil, err
		}
	}
	return circuits, nil
}

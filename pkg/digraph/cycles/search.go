package cycles

import (
	"cmp"
	"context"
	"slices"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
)

// search holds the blocking state for one root vertex: the current DFS
// path, the block flags, and the pending lists that record which vertices
// must be unblocked when a blocked neighbor later joins a circuit. A fresh
// search is created per root and discarded afterwards; only the collected
// circuits outlive it.
type search[P cmp.Ordered] struct {
	g      *digraph.Digraph[P] // working subgraph, one strongly connected component
	root   P
	minLen int
	maxLen int

	blocked map[P]bool
	pending map[P][]P // w -> vertices whose unblocking waits on w
	path    []P
	out     [][]P
}

func newSearch[P cmp.Ordered](g *digraph.Digraph[P], root P, minLen, maxLen int) *search[P] {
	s := &search[P]{
		g:       g,
		root:    root,
		minLen:  minLen,
		maxLen:  maxLen,
		blocked: make(map[P]bool, g.Len()),
		pending: make(map[P][]P, g.Len()),
	}
	for _, v := range g.Vertices() {
		s.blocked[v] = false
		s.pending[v] = nil
	}
	return s
}

// circuit extends the current path with v and explores v's neighbors,
// recording every elementary circuit that closes back at the root with a
// length inside the bounds. It reports whether any circuit through v was
// found; that verdict decides between unblocking v and parking it on its
// neighbors' pending lists.
func (s *search[P]) circuit(ctx context.Context, v P) (bool, error) {
	found := false
	s.path = append(s.path, v)
	s.blocked[v] = true

	for _, w := range s.g.Neighbors(v) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		switch {
		case w == s.root:
			if len(s.path) >= s.minLen && len(s.path) <= s.maxLen {
				s.out = append(s.out, slices.Clone(s.path))
			}
			found = true
		case !s.blocked[w]:
			ok, err := s.circuit(ctx, w)
			if err != nil {
				return false, err
			}
			if ok {
				found = true
			}
		}
	}

	if found {
		s.unblock(v)
	} else {
		// v led nowhere this time. Park it on each neighbor's pending list
		// so a later success through that neighbor frees v for new paths.
		for _, w := range s.g.Neighbors(v) {
			if !slices.Contains(s.pending[w], v) {
				s.pending[w] = append(s.pending[w], v)
			}
		}
	}
	s.path = s.path[:len(s.path)-1]
	return found, nil
}

// unblock clears v's block flag and cascades through pending lists in
// insertion order. The cascade runs on an explicit worklist, so its depth
// is independent of the call stack.
func (s *search[P]) unblock(v P) {
	work := []P{v}
	for len(work) > 0 {
		u := work[len(work)-1]
		work = work[:len(work)-1]
		s.blocked[u] = false
		for len(s.pending[u]) > 0 {
			w := s.pending[u][0]
			s.pending[u] = s.pending[u][1:]
			if s.blocked[w] {
				work = append(work, w)
			}
		}
	}
}

package report

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a requested report does not exist.
var ErrNotFound = errors.New("report not found")

// DefaultListLimit caps List results when the caller passes no limit.
const DefaultListLimit = 50

// Store is the interface for report storage backends.
type Store interface {
	// Save stores a report. Saving a report with an existing ID replaces it.
	Save(ctx context.Context, r *Report) error

	// Get retrieves a report by ID.
	// Returns ErrNotFound if no report has that ID.
	Get(ctx context.Context, id string) (*Report, error)

	// List returns stored reports, newest first, up to limit.
	// A limit of zero or less applies DefaultListLimit.
	List(ctx context.Context, limit int) ([]*Report, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// MemoryStore keeps reports in process memory. It is safe for concurrent
// use and is the default backend for the CLI and for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]*Report
	ordered []*Report // insertion order, oldest first
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]*Report)}
}

// Save stores a report.
func (s *MemoryStore) Save(ctx context.Context, r *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[r.ID]; exists {
		for i, old := range s.ordered {
			if old.ID == r.ID {
				s.ordered[i] = r
				break
			}
		}
	} else {
		s.ordered = append(s.ordered, r)
	}
	s.byID[r.ID] = r
	return nil
}

// Get retrieves a report by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// List returns stored reports, newest first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]*Report, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Report, 0, min(limit, len(s.ordered)))
	for i := len(s.ordered) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.ordered[i])
	}
	return out, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

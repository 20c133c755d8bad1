package store

import (
	"context"
	"sort"
	"sync"

	"github.com/matzehuels/cascade/pkg/errors"
)

// MemoryStore is an in-memory chart store for development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	charts map[string]*Chart
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{charts: make(map[string]*Chart)}
}

// Get retrieves a chart by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.charts[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeChartNotFound, "chart %s not found", id)
	}
	cp := *c
	return &cp, nil
}

// Put stores a chart.
func (s *MemoryStore) Put(ctx context.Context, c *Chart) error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "chart id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *c
	s.charts[c.ID] = &cp
	return nil
}

// Delete removes a chart.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.charts[id]; !ok {
		return errors.New(errors.ErrCodeChartNotFound, "chart %s not found", id)
	}
	delete(s.charts, id)
	return nil
}

// List returns summaries of all charts, newest first. Ties on creation
// time break by ID so the order is stable.
func (s *MemoryStore) List(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.charts))
	for _, c := range s.charts {
		out = append(out, c.Summarize())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)

package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store for tests and single-process servers.
type MemoryStore struct {
	mu     sync.RWMutex
	charts map[string]Chart
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{charts: make(map[string]Chart)}
}

// Put stores a chart, replacing any existing chart with the same ID.
func (s *MemoryStore) Put(ctx context.Context, c Chart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charts[c.ID] = c
	return nil
}

// Get retrieves a chart by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.charts[id]
	if !ok {
		return Chart{}, ErrNotFound
	}
	return c, nil
}

// List returns all stored charts, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Chart, 0, len(s.charts))
	for _, c := range s.charts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a chart.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.charts[id]; !ok {
		return ErrNotFound
	}
	delete(s.charts, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)

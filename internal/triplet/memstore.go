package triplet

import (
	"context"
	"sync"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps. Thread-safe via sync.RWMutex.
type MemStore struct {
	mu       sync.RWMutex
	entities map[int]string
	triplets []Triplet
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{entities: make(map[int]string)}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// AddEntity stores an entity name keyed by its id.
func (m *MemStore) AddEntity(_ context.Context, id int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entities[id] = name
	return nil
}

// AddTriplet appends a triplet to the internal slice.
func (m *MemStore) AddTriplet(_ context.Context, t Triplet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.triplets = append(m.triplets, t)
	return nil
}

// EntityName returns the name stored for id.
func (m *MemStore) EntityName(_ context.Context, id int) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	name, ok := m.entities[id]
	return name, ok, nil
}

// CountByRelation returns triplet counts grouped by relation value.
func (m *MemStore) CountByRelation(_ context.Context) (map[int]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[int]int)
	for _, t := range m.triplets {
		counts[t.Relation]++
	}
	return counts, nil
}

// Neighbors returns the tail entities reachable from head along relation,
// in insertion order, duplicates included.
func (m *MemStore) Neighbors(_ context.Context, head, relation int) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []int
	for _, t := range m.triplets {
		if t.Head == head && t.Relation == relation {
			out = append(out, t.Tail)
		}
	}
	return out, nil
}

// Stats returns counts over the stored graph.
func (m *MemStore) Stats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := &Stats{
		EntityCount:  len(m.entities),
		TripletCount: len(m.triplets),
	}
	for _, t := range m.triplets {
		if t.Relation > s.MaxRelation {
			s.MaxRelation = t.Relation
		}
	}
	return s, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}

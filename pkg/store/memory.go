package store

import (
	"context"
	"sync"

	"github.com/layerforge/layerforge/pkg/tasks"
)

// MemoryStore is an in-process Store for tests and local CLI runs.
// It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	mappings map[mappingKey]CodeMapping
	tasks    []tasks.Task
}

type mappingKey struct {
	elementID string
	target    string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mappings: make(map[mappingKey]CodeMapping),
	}
}

// SaveCodeMapping upserts the mapping keyed by (ElementID, Target).
func (s *MemoryStore) SaveCodeMapping(ctx context.Context, m CodeMapping) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mappings[mappingKey{m.ElementID, m.Target}] = m
	return nil
}

// SaveWorkerTask appends the task.
func (s *MemoryStore) SaveWorkerTask(ctx context.Context, t tasks.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// CodeMapping returns the stored mapping for (elementID, target), if any.
func (s *MemoryStore) CodeMapping(elementID, target string) (CodeMapping, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mappings[mappingKey{elementID, target}]
	return m, ok
}

// Tasks returns a copy of all stored tasks in insertion order.
func (s *MemoryStore) Tasks() []tasks.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tasks.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// MappingCount returns the number of distinct (element, target) mappings.
func (s *MemoryStore) MappingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mappings)
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

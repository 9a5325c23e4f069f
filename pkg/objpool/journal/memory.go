package journal

import (
	"sync"
	"time"
)

// MemoryStore is an in-memory journal store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event // poolID -> events in sequence order
	closed bool
}

// NewMemoryStore creates a new in-memory journal store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[string][]Event),
	}
}

// Append implements Store.
func (m *MemoryStore) Append(poolID string, kind Kind, detail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.events[poolID] = append(m.events[poolID], Event{
		PoolID:    poolID,
		Sequence:  len(m.events[poolID]) + 1,
		Kind:      kind,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// List implements Store.
func (m *MemoryStore) List(poolID string) ([]Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	// Return a copy to prevent modification
	events := make([]Event, len(m.events[poolID]))
	copy(events, m.events[poolID])
	return events, nil
}

// DeletePool implements Store.
func (m *MemoryStore) DeletePool(poolID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.events, poolID)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.events = nil
	return nil
}

// Len returns the total number of events across all pools.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, events := range m.events {
		count += len(events)
	}
	return count
}

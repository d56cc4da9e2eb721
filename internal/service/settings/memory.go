package settings

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps settings for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := Entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	m.entries[key] = e
	return &e, nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)

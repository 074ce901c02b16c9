package kvstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and local runs.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]memoryEntry
}

type memoryEntry struct {
	data    []byte
	version Version
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]memoryEntry)}
}

// Load returns the collection document and its current version.
func (s *MemoryStore) Load(ctx context.Context, name string) ([]byte, Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.collections[name]
	if !ok {
		return nil, 0, nil
	}

	// Return a copy so callers cannot mutate the stored document.
	data := make([]byte, len(entry.data))
	copy(data, entry.data)
	return data, entry.version, nil
}

// Save writes the full collection document with a compare-and-swap on the
// version.
func (s *MemoryStore) Save(ctx context.Context, name string, data []byte, expected Version) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.collections[name]
	if entry.version != expected {
		return ErrVersionConflict
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	s.collections[name] = memoryEntry{data: stored, version: entry.version + 1}
	return nil
}

// Ensure implementations satisfy the interface.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*PostgresStore)(nil)
)

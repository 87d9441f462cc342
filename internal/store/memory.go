package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore implements Store with an in-process map. It backs sessions
// where no writable directory is available, and tests. State does not
// survive a restart.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]json.RawMessage),
	}
}

// Read decodes the value stored under key into dst.
func (s *MemoryStore) Read(key string, dst any) bool {
	s.mu.Lock()
	data, ok := s.values[key]
	s.mu.Unlock()

	if !ok {
		return false
	}

	return json.Unmarshal(data, dst) == nil
}

// Write serialises v and stores it under key.
func (s *MemoryStore) Write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialise value for key %s: %w", key, err)
	}

	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()

	return nil
}

package settings

import (
	"fmt"
	"sync"
)

// MemoryStore keeps settings for the lifetime of the process. It backs the
// application when the database cannot be opened.
type MemoryStore struct {
	mu     sync.Mutex
	schema Schema
	values map[string]bool
}

func NewMemoryStore(schema Schema) *MemoryStore {
	return &MemoryStore{schema: schema, values: make(map[string]bool)}
}

func (m *MemoryStore) Bool(key string) (bool, error) {
	def, err := m.schema.lookup(key)
	if err != nil {
		return false, fmt.Errorf("%w: %s", err, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *MemoryStore) SetBool(key string, v bool) error {
	if _, err := m.schema.lookup(key); err != nil {
		return fmt.Errorf("%w: %s", err, key)
	}
	m.mu.Lock()
	m.values[key] = v
	m.mu.Unlock()
	return nil
}

var _ Backend = (*MemoryStore)(nil)

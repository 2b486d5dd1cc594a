package store

import "sync"

// MemoryStorage is an in-process Storage used by tests and by commands that
// operate on a transient document.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
	ok   bool
}

// NewMemoryStorage returns an empty in-memory storage slot.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Seed pre-populates the slot, as if a document had been saved earlier.
func (m *MemoryStorage) Seed(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte{}, data...)
	m.ok = true
}

// Load returns the stored bytes, if any.
func (m *MemoryStorage) Load() ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ok {
		return nil, false, nil
	}
	return append([]byte{}, m.data...), true, nil
}

// Save overwrites the slot.
func (m *MemoryStorage) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte{}, data...)
	m.ok = true
	return nil
}

// Clear empties the slot.
func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.ok = false
	return nil
}

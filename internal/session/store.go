// Package session owns the bearer credential issued by the backend. It is
// the single source of truth for "am I authenticated": every other component
// reads and writes the credential through a Store.
package session

import (
	"sync"
)

// Store persists and retrieves the bearer credential. An empty string means
// no credential is held. Set("") clears the persisted slot.
type Store interface {
	Get() string
	Set(token string) error
	Clear() error
}

// MemoryStore keeps the credential in memory only. Used by tests and by
// embedders that manage persistence themselves.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MemoryStore) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear() error {
	return m.Set("")
}

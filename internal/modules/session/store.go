// README: Session store interface and in-memory implementation.
package session

import (
	"context"
	"sync"
)

// Store persists planning sessions. Latest returns the most recently saved
// session so that a choose call without an explicit id keeps working.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Latest(ctx context.Context) (*Session, error)
}

// MemoryStore keeps sessions in process memory. It is the default store and
// sufficient for a single instance; use the Redis store to share sessions.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	latest   string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	m.latest = s.ID
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

func (m *MemoryStore) Latest(ctx context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.latest == "" {
		return nil, ErrNoSession
	}
	return m.sessions[m.latest], nil
}

package account

import (
	"context"
	"sync"
)

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemorySessionStore returns a process-local SessionStore, the
// default when no Redis address is configured.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: map[string]Session{}}
}

func (s *memorySessionStore) Get(_ context.Context, token string) (Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	return sess, ok, nil
}

func (s *memorySessionStore) Put(_ context.Context, token string, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = sess
	return nil
}

func (s *memorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

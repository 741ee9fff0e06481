package storage

import (
	"sync"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

// SessionStore provides in-memory storage for quiz sessions by session ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entities.Session
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*entities.Session),
	}
}

// Store saves a session under its ID.
func (s *SessionStore) Store(sess *entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get retrieves a session by ID, or nil when absent.
func (s *SessionStore) Get(id string) *entities.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Delete removes a session by ID.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

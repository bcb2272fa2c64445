package storage

import (
	"sync"
	"time"

	"github.com/Chendasum/7daymoneyflowreset/internal/domain/entities"
)

// SessionStore provides in-memory storage for active quiz sessions by user ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Put saves a session, overwriting any previous session for the same user.
func (s *SessionStore) Put(sess *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.UserID] = sess
}

// Get retrieves the active session for a user, or nil if there is none.
func (s *SessionStore) Get(userID int64) *entities.QuizSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// Delete removes the session for a user.
func (s *SessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len returns the number of active sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// PurgeExpired removes sessions started more than ttl ago and returns
// how many were removed. Abandoned quizzes would otherwise accumulate
// for the lifetime of the process.
func (s *SessionStore) PurgeExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, sess := range s.sessions {
		if sess.StartedAt.Before(cutoff) {
			delete(s.sessions, userID)
			removed++
		}
	}

	return removed
}

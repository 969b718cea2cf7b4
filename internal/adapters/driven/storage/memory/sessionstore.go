package memory

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

type sessionEntry struct {
	session   domain.Session
	expiresAt time.Time
}

func (e sessionEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// SessionStore is an in-memory implementation of driven.SessionStore.
// Sessions expire after the configured TTL of inactivity; a zero TTL keeps
// them until deleted. Expired sessions are evicted on read and by a sweep
// that Save runs at most once per TTL.
type SessionStore struct {
	mu        sync.RWMutex
	sessions  map[string]sessionEntry
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save stores or replaces a session and refreshes its expiry.
func (s *SessionStore) Save(_ context.Context, session domain.Session) error {
	if session.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := sessionEntry{session: copySession(session)}
	if s.ttl > 0 {
		entry.expiresAt = now.Add(s.ttl)
		if !now.Before(s.nextSweep) {
			s.evictExpired(now)
			s.nextSweep = now.Add(s.ttl)
		}
	}
	s.sessions[session.ID] = entry
	return nil
}

// Sweep evicts every expired session and returns how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictExpired(s.now())
}

// evictExpired must be called with the write lock held.
func (s *SessionStore) evictExpired(now time.Time) int {
	evicted := 0
	for id, entry := range s.sessions {
		if entry.expired(now) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if entry.expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	session := copySession(entry.session)
	return &session, nil
}

// Delete removes a session.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len returns the number of stored sessions, including expired ones not yet
// evicted.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// copySession detaches the error map so callers cannot mutate stored state.
func copySession(session domain.Session) domain.Session {
	session.Errors = session.Errors.Clone()
	return session
}

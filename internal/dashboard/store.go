package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kaipengyu/ppl-small-win/internal/core"
)

// Session is a browser session's view of its latest dashboard. Each new
// upload bumps the generation counter; an analysis that finishes after a
// newer one started is stale and its result is dropped.
type Session struct {
	ID         string          `json:"id"`
	Generation uint64          `json:"generation"`
	Dashboard  *core.Dashboard `json:"dashboard,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type sessionState struct {
	session Session
	// generation of the most recently started analysis; only a
	// completion carrying this value may publish its dashboard.
	current uint64
}

// Store is an in-memory session store safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
	now      func() time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*sessionState),
		now:      time.Now,
	}
}

// Create registers a new session and returns it.
func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	sess := Session{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	s.sessions[sess.ID] = &sessionState{session: sess}
	return sess
}

// Get returns a copy of the session.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return state.session, true
}

// Begin marks the start of a new analysis for the session and returns
// the generation token the eventual Complete call must present.
func (s *Store) Begin(id string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return 0, false
	}
	state.current++
	return state.current, true
}

// Complete publishes an analysis result. It reports false, leaving the
// session untouched, when the token is stale because a newer analysis
// began after this one, or when the session is gone.
func (s *Store) Complete(id string, generation uint64, dash core.Dashboard) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok || generation != state.current {
		return false
	}
	state.session.Generation = generation
	state.session.Dashboard = &dash
	state.session.UpdatedAt = s.now().UTC()
	return true
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

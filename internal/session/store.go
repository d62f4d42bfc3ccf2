package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aayushsoam1/cogni-mind/pkg/logger"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idLength = 16

// Store keeps sessions in memory. Nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore returns an empty store. Sessions idle for longer than ttl are
// removed by Sweep; a ttl of zero keeps them forever.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create opens a session for owner, seeded with the starter graph.
func (st *Store) Create(owner string) (*Session, error) {
	id, err := gonanoid.New(idLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	s := newSession(id, owner, st.now)

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()

	logger.Debug("[Session] Created", "session", id, "owner", owner)
	return s, nil
}

// Get returns the session with id if it belongs to owner. Sessions of other
// owners are reported as not found.
func (st *Store) Get(id, owner string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok || s.Owner != owner {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete closes and removes the session. A generation still in flight for it
// finishes, but its result is discarded.
func (st *Store) Delete(id, owner string) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	if !ok || s.Owner != owner {
		st.mu.Unlock()
		return ErrNotFound
	}
	delete(st.sessions, id)
	st.mu.Unlock()

	s.close()
	logger.Debug("[Session] Deleted", "session", id)
	return nil
}

// Len returns the number of open sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes idle sessions and returns how many were removed.
func (st *Store) Sweep() int {
	if st.ttl <= 0 {
		return 0
	}
	cutoff := st.now().Add(-st.ttl)

	st.mu.Lock()
	var expired []*Session
	for id, s := range st.sessions {
		if s.idle(cutoff) {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	if len(expired) > 0 {
		logger.Info("[Session] Expired idle sessions", "count", len(expired))
	}
	return len(expired)
}

// RunJanitor calls Sweep every interval until ctx is done.
func (st *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	if st.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}

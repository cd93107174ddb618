package hunt

import (
	"sync"
	"time"
)

// Store owns every player session. The mutex guards the map itself; a
// session's read-modify-write cycle during a request is deliberately not
// serialized, matching the single-process behavior this service replaces.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for a player, creating a fresh one on first
// contact and stamping last activity either way.
func (st *Store) Get(playerID string) *Session {
	now := time.Now()

	st.mu.RLock()
	s, ok := st.sessions[playerID]
	st.mu.RUnlock()
	if ok {
		s.LastActivity = now
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	// Double-check after acquiring write lock.
	if s, ok := st.sessions[playerID]; ok {
		s.LastActivity = now
		return s
	}

	s = &Session{LastActivity: now}
	st.sessions[playerID] = s
	return s
}

// Reset overwrites the player's session wholesale with fresh defaults.
func (st *Store) Reset(playerID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[playerID] = &Session{LastActivity: time.Now()}
}

// Delete removes the player's session entirely; the next contact recreates it.
func (st *Store) Delete(playerID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, playerID)
}

// Snapshot copies every session for read-only aggregation. Completion slices
// are cloned so later gameplay can't mutate the snapshot.
func (st *Store) Snapshot() map[string]Session {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make(map[string]Session, len(st.sessions))
	for id, s := range st.sessions {
		copied := *s
		copied.Completed = append([]Completion(nil), s.Completed...)
		out[id] = copied
	}
	return out
}

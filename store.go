package legacyguard

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps all live sessions in process memory. There is no durability:
// restarting the process starts every player over, which is fine for a game
// of this size.
//
// Locking discipline: the store mutex only guards the map itself; each entry
// carries its own mutex held for the duration of one action. Two actions on
// the same session serialize, actions on different sessions run in parallel.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*sessionEntry)}
}

// NewID mints an opaque session identifier.
func NewID() string { return uuid.NewString() }

// entry returns the entry for a session id, creating a fresh level-1 session
// on first access. Getting a session never fails.
func (st *Store) entry(id string) *sessionEntry {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	if !ok {
		e = &sessionEntry{session: NewSession(id)}
		st.sessions[id] = e
	}
	return e
}

// Do runs fn with exclusive access to the session for 'id'.
// The session is created on first access.
func (st *Store) Do(id string, fn func(*Session)) {
	e := st.entry(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
}

// Reset unconditionally replaces the session with a fresh level-1 session.
func (st *Store) Reset(id string) {
	e := st.entry(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = NewSession(id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

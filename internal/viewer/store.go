package viewer

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session ID is unknown to the store.
var ErrSessionNotFound = errors.New("viewer session not found")

// Session is a viewer state bound to an ID.
type Session struct {
	ID       string
	State    State
	LastSeen time.Time
}

// Store keeps viewer sessions in memory.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a new session holding s and returns it.
func (st *Store) Create(s State) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess := &Session{
		ID:       uuid.New().String(),
		State:    s,
		LastSeen: st.now(),
	}
	st.sessions[sess.ID] = sess
	return *sess
}

// Get returns the session with the given ID.
func (st *Store) Get(id string) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	sess.LastSeen = st.now()
	return *sess, nil
}

// Update applies fn to the session state atomically and stores the result.
// If fn fails the stored state is left unchanged.
func (st *Store) Update(id string, fn func(State) (State, error)) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	next, err := fn(sess.State)
	if err != nil {
		return *sess, err
	}
	sess.State = next
	sess.LastSeen = st.now()
	return *sess, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep removes sessions not seen for longer than idle and returns how many
// were removed.
func (st *Store) Sweep(idle time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := st.now().Add(-idle)
	removed := 0
	for id, sess := range st.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

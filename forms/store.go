package forms

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("form session not found")

// Snapshot is the externally visible state of a session.
type Snapshot struct {
	ID     string `json:"id"`
	Kind   string `json:"tipo"`
	Values Fields `json:"valores"`
	Errors Errors `json:"errores"`
	Valid  *bool  `json:"valido,omitempty"`
}

type session struct {
	kind     string
	form     *Controller
	lastUsed time.Time
}

// Store keeps form sessions in memory, keyed by a random id. Sessions idle
// for longer than the ttl are dropped on the next access to the store.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: map[string]*session{},
		now:      time.Now,
	}
}

// Open starts a new session for the given kind of form.
func (s *Store) Open(kind string, initial Fields, validate ValidateFunc) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	id := uuid.NewString()
	sess := &session{kind: kind, form: NewController(initial, validate), lastUsed: s.now()}
	s.sessions[id] = sess
	return snapshot(id, sess, nil)
}

// Get returns the current state of a session.
func (s *Store) Get(id string) (Snapshot, error) {
	return s.Do(id, func(*Controller) *bool { return nil })
}

// Do runs fn against the session's controller while holding the store lock.
// fn may return a validity flag to include in the snapshot.
func (s *Store) Do(id string, fn func(*Controller) *bool) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	sess, ok := s.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	valid := fn(sess.form)
	sess.lastUsed = s.now()
	return snapshot(id, sess, valid), nil
}

// Close removes a session.
func (s *Store) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.sessions)
}

func (s *Store) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func snapshot(id string, sess *session, valid *bool) Snapshot {
	return Snapshot{
		ID:     id,
		Kind:   sess.kind,
		Values: sess.form.Values(),
		Errors: sess.form.Errors(),
		Valid:  valid,
	}
}

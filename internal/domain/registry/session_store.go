package registry

import (
	"slices"

	"github.com/bnema/tabring/internal/domain/entity"
)

// SessionStore is an unbounded LIFO stack of snapshots.
type SessionStore struct {
	stack []entity.SessionSnapshot
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Push saves a snapshot on top of the stack.
func (s *SessionStore) Push(snap entity.SessionSnapshot) {
	s.stack = append(s.stack, snap)
}

// Pop removes and returns the most recent snapshot.
func (s *SessionStore) Pop() (entity.SessionSnapshot, bool) {
	n := len(s.stack)
	if n == 0 {
		return entity.SessionSnapshot{}, false
	}
	snap := s.stack[n-1]
	s.stack[n-1] = entity.SessionSnapshot{}
	s.stack = s.stack[:n-1]
	return snap, true
}

// Peek returns the most recent snapshot without consuming it.
func (s *SessionStore) Peek() (entity.SessionSnapshot, bool) {
	if len(s.stack) == 0 {
		return entity.SessionSnapshot{}, false
	}
	return s.stack[len(s.stack)-1].Clone(), true
}

// Len returns the number of saved snapshots.
func (s *SessionStore) Len() int {
	return len(s.stack)
}

// List returns the saved snapshots, newest first.
func (s *SessionStore) List() []entity.SessionSnapshot {
	out := make([]entity.SessionSnapshot, 0, len(s.stack))
	for _, snap := range slices.Backward(s.stack) {
		out = append(out, snap.Clone())
	}
	return out
}

// Package session holds the identity of the currently signed-in user for the
// lifetime of the process. The slot is in-memory only: a restart means
// logged out.
package session

import (
	"sync"

	"github.com/dmitrijs2005/labbench/internal/models"
)

// Session is the process-wide slot holding at most one authenticated user.
// It has its own lock, independent of the store lock, and the lock is never
// held across database I/O or password hashing.
type Session struct {
	mu   sync.Mutex
	user *models.User
}

func New() *Session {
	return &Session{}
}

// Set atomically replaces any previous occupant with a copy of u.
func (s *Session) Set(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// Clear atomically empties the slot. Safe to call when already empty.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Get returns a copy of the current occupant. Mutating the returned value
// does not affect the stored record.
func (s *Session) Get() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Package session holds the identity of the currently logged-in user.
//
// The slot is process-wide: there is one login for the whole server, no
// token and no expiry, so concurrent clients observe and overwrite each
// other's login. That is the shape of the product today; the mutex only
// keeps the reads and writes themselves safe.
//
// TODO: replace the singleton with per-client sessions (signed cookie
// keyed into a server-side session map) so concurrent users stop
// sharing one login.
package session

import "sync"

// Login is the active credential pair as submitted at login time.
type Login struct {
	Username string
	Password string
}

// Slot is the single-slot session holder.
type Slot struct {
	mu    sync.RWMutex
	login *Login
}

func NewSlot() *Slot {
	return &Slot{}
}

// Current returns the active login, or ok=false when nobody is logged in.
func (s *Slot) Current() (Login, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.login == nil {
		return Login{}, false
	}
	return *s.login, true
}

func (s *Slot) Set(login Login) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.login = &login
}

func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.login = nil
}

// Rename updates the stored username when the given user is the one
// logged in; a rename of anyone else leaves the slot alone.
func (s *Slot) Rename(oldUsername, newUsername string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.login != nil && s.login.Username == oldUsername {
		s.login.Username = newUsername
	}
}

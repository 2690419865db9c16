// Package session keeps one rental agency per client session.
//
// Sessions live in an in-memory go-memdb table keyed by session id. A session is
// created on a client's first request, touched on each later one, and swept once
// it has been idle longer than the configured TTL.
package session

import (
	"errors"
	"sync"
	"time"

	"vehicle-rental-backend/internal/agency"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Session owns one agency. The agency itself is not safe for concurrent use,
// so every access goes through Do.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	agency *agency.RentalAgency
}

// New wraps an agency in a session that no manager tracks, for callers such as
// the demo that drive the services directly.
func New(id string, a *agency.RentalAgency) *Session {
	return &Session{ID: id, CreatedAt: time.Now(), agency: a}
}

// Do runs fn with exclusive access to the session's agency.
func (s *Session) Do(fn func(a *agency.RentalAgency) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.agency)
}

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/security"
)

// AgencyFactory builds the agency for a new session.
type AgencyFactory func() *agency.RentalAgency

type Manager struct {
	store     *Store
	tokens    security.TokenManager
	ttl       time.Duration
	newAgency AgencyFactory
	now       func() time.Time
}

// NewManager creates a session manager. A ttl of zero disables idle expiry.
func NewManager(tokens security.TokenManager, ttl time.Duration, newAgency AgencyFactory) (*Manager, error) {
	store, err := NewStore()
	if err != nil {
		return nil, err
	}
	if newAgency == nil {
		newAgency = agency.New
	}
	return &Manager{
		store:     store,
		tokens:    tokens,
		ttl:       ttl,
		newAgency: newAgency,
		now:       time.Now,
	}, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start creates a session with a fresh agency and returns it with its token.
func (m *Manager) Start(ctx context.Context) (*Session, string, error) {
	id := uuid.NewString()
	now := m.now()
	sess := New(id, m.newAgency().WithLogger(logger.WithSession(id)))
	sess.CreatedAt = now

	if err := m.store.Insert(&record{ID: id, CreatedAt: now, LastAccessed: now, Session: sess}); err != nil {
		return nil, "", err
	}
	token, err := m.tokens.GenerateSessionToken(id, m.ttl)
	if err != nil {
		_ = m.store.Delete(id)
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	logger.InfoContext(ctx, "Session started", "session_id", id)
	return sess, token, nil
}

// Resolve maps a token to its live session and records the access.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		if errors.Is(err, security.ErrExpiredToken) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	return m.touch(ctx, claims.SessionID)
}

// Get returns a live session by id and records the access.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	return m.touch(ctx, id)
}

// Refresh issues a new token for the session, restarting its token lifetime.
func (m *Manager) Refresh(sess *Session) (string, error) {
	return m.tokens.GenerateSessionToken(sess.ID, m.ttl)
}

func (m *Manager) touch(ctx context.Context, id string) (*Session, error) {
	r, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}
	now := m.now()
	if m.expired(r, now) {
		if err := m.store.Delete(id); err != nil && !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		logger.InfoContext(ctx, "Session expired on access", "session_id", id)
		return nil, ErrSessionExpired
	}
	r, err = m.store.Touch(id, now)
	if err != nil {
		return nil, err
	}
	return r.Session, nil
}

func (m *Manager) expired(r *record, now time.Time) bool {
	return m.ttl > 0 && now.Sub(r.LastAccessed) > m.ttl
}

// End discards a session and its agency.
func (m *Manager) End(ctx context.Context, id string) error {
	if err := m.store.Delete(id); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Session ended", "session_id", id)
	return nil
}

// SweepExpired removes sessions idle for longer than the TTL as of now.
func (m *Manager) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	if m.ttl <= 0 {
		return 0, nil
	}
	ids, err := m.store.DeleteIdleSince(now.Add(-m.ttl))
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		logger.Debug("Session swept", "session_id", id)
	}
	return len(ids), nil
}

func (m *Manager) Count() (int, error) {
	return m.store.Count()
}

package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type")
)

type TokenType string

const TokenTypeSession TokenType = "session"

const (
	sessionIssuer   = "vehicle-rental"
	sessionAudience = "rental-session"
)

// SessionClaims binds a signed token to one server-side agency session.
type SessionClaims struct {
	SessionID string    `json:"sid"`
	Type      TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateSessionToken(sessionID string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
}

type tokenManager struct {
	secret []byte
	now    func() time.Time
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// GenerateSessionToken signs a token for sessionID. A ttl of zero issues a
// token without an expiry.
func (m *tokenManager) GenerateSessionToken(sessionID string, ttl time.Duration) (string, error) {
	if sessionID == "" {
		return "", ErrInvalidToken
	}
	now := m.now()
	claims := SessionClaims{
		SessionID: sessionID,
		Type:      TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  sessionID,
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   sessionIssuer,
			Audience: jwt.ClaimStrings{sessionAudience},
			ID:       uuid.NewString(),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithAudience(sessionAudience), jwt.WithTimeFunc(m.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != TokenTypeSession {
		return nil, ErrWrongTokenType
	}
	if claims.SessionID == "" {
		claims.SessionID = claims.Subject
	}
	if claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

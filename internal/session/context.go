package session

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying sess.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the session stored in ctx.
func FromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(contextKey{}).(*Session)
	if !ok || sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

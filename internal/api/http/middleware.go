package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/session"
)

const SessionHeader = "X-Session-Token"

// SessionProvider is the part of the session manager the middleware needs.
type SessionProvider interface {
	Start(ctx context.Context) (*session.Session, string, error)
	Resolve(ctx context.Context, token string) (*session.Session, error)
	Refresh(sess *session.Session) (string, error)
	TTL() time.Duration
}

// SessionMiddleware attaches the caller's session to the request context. A
// missing, invalid or expired token starts a new session. The current token is
// returned on every response in the header and the cookie.
func SessionMiddleware(provider SessionProvider, cookieName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var sess *session.Session
			if token := requestToken(r, cookieName); token != "" {
				var err error
				sess, err = provider.Resolve(ctx, token)
				if err != nil {
					logger.Debug("Session token rejected, starting new session", "error", err)
				}
			}

			var (
				token string
				err   error
			)
			if sess == nil {
				sess, token, err = provider.Start(ctx)
			} else {
				token, err = provider.Refresh(sess)
			}
			if err != nil {
				writeServiceError(w, err)
				return
			}

			w.Header().Set(SessionHeader, token)
			cookie := &http.Cookie{
				Name:     cookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			}
			if ttl := provider.TTL(); ttl > 0 {
				cookie.MaxAge = int(ttl.Seconds())
			}
			http.SetCookie(w, cookie)

			next.ServeHTTP(w, r.WithContext(session.NewContext(ctx, sess)))
		})
	}
}

func requestToken(r *http.Request, cookieName string) string {
	if token := r.Header.Get(SessionHeader); token != "" {
		return token
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs each request with its status and latency.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

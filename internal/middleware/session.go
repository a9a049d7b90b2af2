package middleware

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain"
	"storefront/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	// SessionKey is the request context key holding the visitor session.
	SessionKey contextKey = "session"
)

// SessionConfig holds session cookie configuration
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// SessionMiddleware loads the visitor session named by the session cookie,
// creating a fresh one when the cookie is missing or the stored session has
// expired, and saves it back to the store after the handler runs.
func SessionMiddleware(store session.Store, cfg SessionConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *domain.Session

			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				sess, err = store.Get(r.Context(), cookie.Value)
				if err != nil && err != session.ErrSessionNotFound {
					logger.Error("Failed to load session", zap.Error(err))
				}
			}

			if sess == nil {
				sess = domain.NewSession(uuid.NewString(), cfg.TTL)
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    sess.ID,
					Path:     "/",
					Expires:  sess.ExpiresAt,
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
				logger.Debug("Created session", zap.String("session_id", sess.ID))
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))

			// Handlers mutate the session in place; persist whatever state
			// they left behind.
			if err := store.Save(r.Context(), sess); err != nil {
				logger.Error("Failed to save session",
					zap.Error(err),
					zap.String("session_id", sess.ID),
				)
			}
		})
	}
}

// GetSession extracts the visitor session from the request context
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*domain.Session)
	return sess, ok
}

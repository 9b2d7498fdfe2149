package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/ada-checkout/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

type sessionKey struct{}

// SessionMiddleware attaches the session id carried by the request token to
// the context. Requests without a valid token pass through without one.
func SessionMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			id, err := tokener.GetSessionID(ctx, tokenString)
			if err != nil {
				logger.Log.Debugw("ignoring session token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, sessionKey{}, id)))
		})
	}
}

// SessionFromContext returns the session id stored by SessionMiddleware.
func SessionFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionKey{}).(uuid.UUID)
	return id, ok
}

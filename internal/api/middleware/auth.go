package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/ethicallogix/assignment-maker/internal/pkg/logger"
	"github.com/ethicallogix/assignment-maker/internal/pkg/response"
)

// SessionResolver resolves bearer tokens to sessions.
type SessionResolver interface {
	SessionByToken(ctx context.Context, token string) (*entity.UserSession, error)
}

type sessionContextKey struct{}

// Auth rejects requests without a valid bearer token and stores the
// resolved session in the request context.
func Auth(resolver SessionResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			session, err := resolver.SessionByToken(r.Context(), token)
			if err != nil {
				ctxzap.Warn(r.Context(), "unauthenticated request",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				response.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ctx := logger.WithUser(r.Context(), session.Username)
			ctx = context.WithValue(ctx, sessionContextKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects requests whose session is not an admin session. It
// must run after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok || !session.IsAdmin {
			ctxzap.Warn(r.Context(), "admin access denied", zap.String("path", r.URL.Path))
			response.Error(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext returns the session stored by Auth.
func SessionFromContext(ctx context.Context) (*entity.UserSession, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*entity.UserSession)
	return session, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/logger"
)

type identityKey struct{}

// TokenVerifier is satisfied by *Verifier
type TokenVerifier interface {
	Verify(raw string) (*domain.Identity, error)
}

// WithIdentity stores the caller's identity in ctx
func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by WithIdentity
func FromContext(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*domain.Identity)
	return id, ok && id != nil
}

// ExtractToken reads the bearer token from the Authorization header, falling
// back to the access_token query parameter used by EventSource clients.
func ExtractToken(r *http.Request) string {
	if h := r.Header.Get(HeaderAuthorization); h != "" {
		if len(h) > len(BearerPrefix) && strings.EqualFold(h[:len(BearerPrefix)], BearerPrefix) {
			return strings.TrimSpace(h[len(BearerPrefix):])
		}
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(QueryParamAccessToken))
}

// RequireRole rejects callers whose identity lacks role
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := FromContext(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			if !id.HasRole(role) {
				logger.FromContext(r.Context()).Warn(LogMsgRoleRequired,
					"user_id", id.UserID,
					"role", role,
					"path", r.URL.Path)
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sosmedia/api-sosmed/internal/apperrors"
	"github.com/sosmedia/api-sosmed/internal/httpx"
)

type ctxKey string

const ctxUserID ctxKey = "userID"

// Middleware validates the access token from the token cookie or the
// Authorization header and threads the account id through the request
// context.
func Middleware(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			raw := accessTokenFrom(r)
			if raw == "" {
				httpx.Error(w, apperrors.Unauthorized("authentication required"))
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				httpx.Error(w, apperrors.Unauthorized("invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// WithUserID returns a context carrying the authenticated account id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxUserID, id)
}

// UserID returns the authenticated account id set by Middleware.
func UserID(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(ctxUserID).(uuid.UUID)
	return id, ok
}

func accessTokenFrom(r *http.Request) string {
	if c, err := r.Cookie(AccessCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

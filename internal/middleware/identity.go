// Package middleware holds HTTP middleware shared across handler packages.
package middleware

import (
	"context"
	"net/http"

	"github.com/osse101/LootVault_Go/internal/logger"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// HeaderUserID carries the authenticated user's ID, set by the upstream
// auth gateway after session validation. Session handling itself is outside
// this service.
const HeaderUserID = "X-User-ID"

// ErrMsgMissingIdentity is returned when an identity-requiring endpoint is
// called without a resolved user.
const ErrMsgMissingIdentity = "Missing user identity"

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID extracts the authenticated user ID from the context.
func UserID(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Identity lifts the upstream-resolved user identity into the request
// context. It does not reject anonymous requests; endpoints that need an
// identity wrap themselves in RequireIdentity.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get(HeaderUserID); userID != "" {
			r = r.WithContext(WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireIdentity rejects requests that reached an authenticated endpoint
// without a user identity.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserID(r.Context()); !ok {
			logger.FromContext(r.Context()).Warn("Request missing user identity",
				"path", r.URL.Path)
			http.Error(w, ErrMsgMissingIdentity, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/globallang/gla-backend/internal/auth"
	"github.com/globallang/gla-backend/internal/http/respond"
	"github.com/globallang/gla-backend/internal/storage"
)

type ctxKey struct{}

var emailKey ctxKey

// RequireToken rejects requests without a valid bearer token. A missing
// Authorization header is a 401; a token that fails verification is a 403.
// On success the token's email claim is attached to the request context.
func RequireToken(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Error(w, http.StatusUnauthorized, "unauthorized access")
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			claims, err := tokens.Verify(raw)
			if err != nil {
				respond.Error(w, http.StatusForbidden, "unauthorized access")
				return
			}
			email, _ := claims["email"].(string)
			ctx := context.WithValue(r.Context(), emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole checks the stored role of the token's user. It must run after
// RequireToken. A missing record or any other role is a 403; admin does not
// satisfy an instructor check. Costs one store lookup per request.
func RequireRole(users storage.UserStore, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := users.FindUserByEmail(r.Context(), EmailFromContext(r.Context()))
			if err != nil || user.Role != role {
				respond.Error(w, http.StatusForbidden, "forbidden access")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// EmailFromContext returns the verified email claim, or "" when unset.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

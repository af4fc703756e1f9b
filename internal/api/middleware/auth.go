package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wealthflow/wealthflow-backend/internal/api/response"
	"github.com/wealthflow/wealthflow-backend/internal/service"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth returns a middleware that requires a valid bearer token and injects
// the authenticated user ID into the request context. All data routes sit
// behind it, which is what makes cross-user access impossible: every
// repository query is scoped by the user ID taken from here.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.RespondError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			userID, err := authService.ValidateToken(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, err.Error(), nil)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID returns a context carrying the given user ID, as if the request
// had passed through Auth. Used by handler tests.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated user ID from the request context, or the
// empty string when the request did not pass through the Auth middleware.
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

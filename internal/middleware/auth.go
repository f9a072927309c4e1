package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"learnhub-backend/internal/models"
)

type contextKey string

const userKey contextKey = "user"

// Validator checks a bearer token and resolves it to the owning user.
type Validator interface {
	Validate(ctx context.Context, token string) (*models.User, error)
}

type Auth struct {
	validator Validator
}

func NewAuth(v Validator) *Auth {
	return &Auth{validator: v}
}

// Middleware validates the Authorization header and attaches the resolved
// user to the request context.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization header", r)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization format", r)
			return
		}

		user, err := a.validator.Validate(r.Context(), parts[1])
		if err != nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", r)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAnalytics gates analytics routes to roles with the analytics
// capability. Must run after Middleware.
func RequireAnalytics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated", r)
			return
		}
		if !models.CanViewAnalytics(user.Role) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Analytics access requires an instructor or admin role", r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUser extracts the authenticated user from the request context.
func GetUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

func writeError(w http.ResponseWriter, status int, code, message string, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":       code,
			"message":    message,
			"request_id": requestID,
		},
	})
}

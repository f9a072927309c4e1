package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"learnhub-backend/internal/models"
	"learnhub-backend/internal/services"
)

// AuthHandler serves the session endpoints. These keep the legacy
// {ok, error} wire shape that existing clients were built against, so
// failures here do not go through handleServiceError.
type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.AuthErrorResponse{Error: "Email is required"})
		return
	}

	res, err := h.authService.Exchange(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		switch err.(type) {
		case *services.ValidationError:
			writeJSON(w, http.StatusBadRequest, models.AuthErrorResponse{Error: "Email is required"})
		case *services.NotFoundError:
			writeJSON(w, http.StatusUnauthorized, models.AuthErrorResponse{Error: "Invalid email or password"})
		default:
			writeJSON(w, http.StatusInternalServerError, models.AuthErrorResponse{Error: "Login failed"})
		}
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{OK: true, User: res.User, Token: res.Token})
}

// Me resolves the bearer token itself rather than sitting behind the auth
// middleware, so its failures keep the same wire shape as Login.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Validate(r.Context(), bearerToken(r))
	if err != nil {
		message := "Invalid token"
		if ue, ok := err.(*services.UnauthorizedError); ok {
			message = ue.Message
		}
		writeJSON(w, http.StatusUnauthorized, models.AuthErrorResponse{Error: message})
		return
	}

	writeJSON(w, http.StatusOK, models.MeResponse{OK: true, User: user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, models.AuthErrorResponse{Error: "Not authenticated"})
		return
	}

	h.authService.Logout(r.Context(), token)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

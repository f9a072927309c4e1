package handlers

import (
	"encoding/json"
	"net/http"

	"learnhub-backend/internal/middleware"
	"learnhub-backend/internal/models"
	"learnhub-backend/internal/repository"
)

type ProfileHandler struct {
	users *repository.UserRepo
}

func NewProfileHandler(users *repository.UserRepo) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, middleware.GetUser(r.Context()))
}

// Update applies the non-empty fields of the request to the caller's own
// profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	user := middleware.GetUser(r.Context())
	updated, err := h.users.UpdateProfile(r.Context(), user.ID, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

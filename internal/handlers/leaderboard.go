package handlers

import (
	"net/http"

	"learnhub-backend/internal/repository"
	"learnhub-backend/internal/services"
)

type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
	users       *repository.UserRepo
}

func NewLeaderboardHandler(leaderboard *services.LeaderboardService, users *repository.UserRepo) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, users: users}
}

func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": h.leaderboard.Rank(users)})
}

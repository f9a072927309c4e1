package handlers

import (
	"net/http"
	"time"

	"learnhub-backend/internal/middleware"
	"learnhub-backend/internal/repository"
	"learnhub-backend/internal/services"
)

type InsightHandler struct {
	insights *services.InsightService
	users    *repository.UserRepo
	courses  *repository.CourseRepo
}

func NewInsightHandler(insights *services.InsightService, users *repository.UserRepo, courses *repository.CourseRepo) *InsightHandler {
	return &InsightHandler{insights: insights, users: users, courses: courses}
}

// MyInsight returns the derived learning insight for the calling user.
func (h *InsightHandler) MyInsight(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	writeJSON(w, http.StatusOK, h.insights.Compute(*user))
}

// Overview aggregates across the whole directory. The capability gate in
// front of this route restricts it to instructors and admins.
func (h *InsightHandler) Overview(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	courses, err := h.courses.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.insights.Overview(users, courses, time.Now().UTC()))
}

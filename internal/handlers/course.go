package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"learnhub-backend/internal/middleware"
	"learnhub-backend/internal/services"
)

type CourseHandler struct {
	catalog *services.CatalogService
}

func NewCourseHandler(catalog *services.CatalogService) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

// List filters the catalog by q, category and level query params. All
// three are optional; blank or wildcard values return the full catalog.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	courses, err := h.catalog.Filter(r.Context(), q.Get("q"), q.Get("category"), q.Get("level"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	courseID := chi.URLParam(r, "id")

	updated, err := h.catalog.Enroll(r.Context(), user.ID, courseID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": updated})
}

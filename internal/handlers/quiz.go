package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"learnhub-backend/internal/middleware"
	"learnhub-backend/internal/models"
	"learnhub-backend/internal/services"
)

type QuizHandler struct {
	quiz *services.QuizService
}

func NewQuizHandler(quiz *services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// Questions returns the bank without answer keys.
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": h.quiz.Questions()})
}

func (h *QuizHandler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	attempt := h.quiz.StartAttempt(user.ID)
	writeJSON(w, http.StatusCreated, attempt)
}

func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.ownedAttempt(w, r)
	if !ok {
		return
	}

	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	updated, err := h.quiz.RecordAnswer(attempt.ID, req.QuestionIndex, req.OptionIndex)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.ownedAttempt(w, r)
	if !ok {
		return
	}

	updated, err := h.quiz.Advance(attempt.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.ownedAttempt(w, r)
	if !ok {
		return
	}

	result, err := h.quiz.Submit(attempt.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Report streams the score report as a downloadable text file.
func (h *QuizHandler) Report(w http.ResponseWriter, r *http.Request) {
	attempt, ok := h.ownedAttempt(w, r)
	if !ok {
		return
	}

	user := middleware.GetUser(r.Context())
	report, err := h.quiz.Report(attempt.ID, user.FullName)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	filename := "Quiz_Report_" + strings.ReplaceAll(user.FullName, " ", "_") + ".txt"
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write([]byte(report))
}

// ownedAttempt parses the attempt ID, loads it, and enforces that it
// belongs to the calling user. Writes the error response itself on failure.
func (h *QuizHandler) ownedAttempt(w http.ResponseWriter, r *http.Request) (*models.QuizAttempt, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid attempt ID", r))
		return nil, false
	}

	attempt, err := h.quiz.GetAttempt(id)
	if err != nil {
		handleServiceError(w, r, err)
		return nil, false
	}

	user := middleware.GetUser(r.Context())
	if attempt.UserID != user.ID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Access denied", r))
		return nil, false
	}
	return attempt, true
}

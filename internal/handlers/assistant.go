package handlers

import (
	"encoding/json"
	"net/http"

	"learnhub-backend/internal/models"
	"learnhub-backend/internal/services"
)

type AssistantHandler struct {
	assistant *services.AssistantService
}

func NewAssistantHandler(assistant *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Chat answers a single free-text query. Every query gets a reply, so the
// only failure mode is a malformed body.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	reply := h.assistant.Respond(r.Context(), req.Message)
	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

package websocket

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"learnhub-backend/internal/models"
	"learnhub-backend/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub runs the interactive assistant chat over websockets. Each message
// from the client is answered synchronously on the same connection, so
// there is no cross-connection broadcast.
type Hub struct {
	mu          sync.RWMutex
	connections map[string][]*websocket.Conn
	auth        *services.AuthService
	assistant   *services.AssistantService
}

func NewHub(auth *services.AuthService, assistant *services.AssistantService) *Hub {
	return &Hub{
		connections: make(map[string][]*websocket.Conn),
		auth:        auth,
		assistant:   assistant,
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Browsers cannot set headers on websocket dials, so the session token
	// rides in the query string.
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.auth.Validate(r.Context(), token)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.registerConnection(user.ID, conn)

	go h.chatLoop(user.ID, conn)
}

func (h *Hub) chatLoop(userID string, conn *websocket.Conn) {
	defer h.unregisterConnection(userID, conn)

	for {
		var req models.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			break
		}

		reply := h.assistant.Respond(context.Background(), req.Message)
		if err := conn.WriteJSON(models.ChatResponse{Reply: reply}); err != nil {
			break
		}
	}
}

func (h *Hub) registerConnection(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[userID] = append(h.connections[userID], conn)
	log.Printf("WebSocket connected: user %s (total: %d)", userID, len(h.connections[userID]))
}

func (h *Hub) unregisterConnection(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()

	conns := h.connections[userID]
	for i, c := range conns {
		if c == conn {
			h.connections[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.connections[userID]) == 0 {
		delete(h.connections, userID)
	}

	log.Printf("WebSocket disconnected: user %s", userID)
}

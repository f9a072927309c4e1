package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"learnhub-backend/internal/handlers"
	"learnhub-backend/internal/middleware"
	"learnhub-backend/internal/websocket"
)

func New(
	auth *middleware.Auth,
	authHandler *handlers.AuthHandler,
	courseHandler *handlers.CourseHandler,
	insightHandler *handlers.InsightHandler,
	quizHandler *handlers.QuizHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	assistantHandler *handlers.AssistantHandler,
	profileHandler *handlers.ProfileHandler,
	wsHub *websocket.Hub,
	corsOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsOrigins))

	// Login rate limiter (10 req/min per IP)
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Auth Routes ────
		// These resolve the bearer token themselves to keep the legacy
		// {ok, error} wire shape, so they stay outside the auth middleware.
		r.Group(func(r chi.Router) {
			r.Use(loginLimiter.Middleware)
			r.Post("/login", authHandler.Login)
		})
		r.Get("/me", authHandler.Me)
		r.Post("/logout", authHandler.Logout)

		// ──── Course Routes ────
		r.Route("/courses", func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Get("/", courseHandler.List)
			r.Post("/{id}/enroll", courseHandler.Enroll)
		})

		// ──── Insight Routes ────
		r.Route("/insights", func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Get("/me", insightHandler.MyInsight)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Use(middleware.RequireAnalytics)
			r.Get("/overview", insightHandler.Overview)
		})

		// ──── Quiz Routes ────
		r.Route("/quiz", func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Get("/", quizHandler.Questions)
			r.Post("/attempts", quizHandler.StartAttempt)
			r.Post("/attempts/{id}/answers", quizHandler.Answer)
			r.Post("/attempts/{id}/next", quizHandler.Next)
			r.Post("/attempts/{id}/submit", quizHandler.Submit)
			r.Get("/attempts/{id}/report", quizHandler.Report)
		})

		// ──── Leaderboard Routes ────
		r.Route("/leaderboard", func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Get("/", leaderboardHandler.List)
		})

		// ──── Assistant Routes ────
		r.Route("/assistant", func(r chi.Router) {
			// WebSocket authenticates via ?token= inside the hub.
			r.Get("/ws", wsHub.HandleWebSocket)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware)
				r.Post("/chat", assistantHandler.Chat)
			})
		})

		// ──── Profile Routes ────
		r.Route("/profile", func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Get("/", profileHandler.Get)
			r.Put("/", profileHandler.Update)
		})
	})

	return r
}

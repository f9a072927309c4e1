package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnhub-backend/internal/config"
	"learnhub-backend/internal/database"
	"learnhub-backend/internal/handlers"
	"learnhub-backend/internal/middleware"
	"learnhub-backend/internal/repository"
	"learnhub-backend/internal/router"
	"learnhub-backend/internal/services"
	"learnhub-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting LearnHub Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Repositories ────
	userRepo := repository.NewUserRepo(repository.SeedUsers())
	courseRepo := repository.NewCourseRepo(repository.SeedCourses())
	log.Println("✓ Seed data loaded")

	// ──── Step 3: Initialize Session Store ────
	var tokenStore services.TokenStore
	switch cfg.TokenStore {
	case "redis":
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		tokenStore = services.NewRedisTokenStore(redisClient, cfg.TokenTTL)
		log.Println("✓ Redis session store connected")
	default:
		tokenStore = services.NewMemoryTokenStore()
		log.Println("✓ In-memory session store initialized")
	}

	// ──── Step 4: Initialize Services ────
	authService := services.NewAuthService(userRepo, tokenStore)
	insightService := services.NewInsightService()
	quizService := services.NewQuizService(services.DefaultQuestions())
	leaderboardService := services.NewLeaderboardService()
	assistantService := services.NewAssistantService(courseRepo)
	catalogService := services.NewCatalogService(courseRepo, userRepo)

	// ──── Step 5: Initialize Handlers ────
	auth := middleware.NewAuth(authService)
	authHandler := handlers.NewAuthHandler(authService)
	courseHandler := handlers.NewCourseHandler(catalogService)
	insightHandler := handlers.NewInsightHandler(insightService, userRepo, courseRepo)
	quizHandler := handlers.NewQuizHandler(quizService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService, userRepo)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	profileHandler := handlers.NewProfileHandler(userRepo)

	// ──── Step 6: Start WebSocket Hub ────
	wsHub := websocket.NewHub(authService, assistantService)
	log.Println("✓ WebSocket hub started")

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		auth,
		authHandler,
		courseHandler,
		insightHandler,
		quizHandler,
		leaderboardHandler,
		assistantHandler,
		profileHandler,
		wsHub,
		cfg.CORSOrigins,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ LearnHub Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/assistant/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

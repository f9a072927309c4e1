package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// CORS allow-list (comma-separated origins)
	CORSOrigins []string

	// Session token storage: "memory" (demo default, tokens never expire)
	// or "redis" (expiring store for long-lived deployments)
	TokenStore string
	RedisURL   string
	TokenTTL   time.Duration

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "4000"),
		Env:         getEnvOrDefault("ENV", "development"),
		CORSOrigins: splitOrigins(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),
		TokenStore:  getEnvOrDefault("TOKEN_STORE", "memory"),
		RedisURL:    getEnvOrDefault("REDIS_URL", ""),
		TokenTTL:    getEnvAsDurationOrDefault("TOKEN_TTL", 7*24*time.Hour),
		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	if cfg.TokenStore == "redis" && cfg.RedisURL == "" {
		panic("TOKEN_STORE=redis requires REDIS_URL to be set")
	}

	return cfg
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

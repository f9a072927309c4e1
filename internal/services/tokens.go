package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore maps opaque session tokens to user IDs. Tokens are not
// self-validating; validity is exactly membership in the store.
type TokenStore interface {
	Save(ctx context.Context, token, userID string) error
	Lookup(ctx context.Context, token string) (string, error)
	Evict(ctx context.Context, token string) error
}

// MemoryTokenStore is the reference store: process-wide, unbounded,
// entries live until logout or process exit. Fine for the demo deployment;
// a long-lived server should use RedisTokenStore so tokens expire.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]string)}
}

func (s *MemoryTokenStore) Save(ctx context.Context, token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *MemoryTokenStore) Lookup(ctx context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.tokens[token]
	if !ok {
		return "", &UnauthorizedError{Message: "Invalid token"}
	}
	return userID, nil
}

func (s *MemoryTokenStore) Evict(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// RedisTokenStore keeps session tokens in Redis with a TTL.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, ttl: ttl}
}

func (s *RedisTokenStore) Save(ctx context.Context, token, userID string) error {
	if err := s.client.Set(ctx, "session:"+token, userID, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Lookup(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, "session:"+token).Result()
	if err != nil {
		return "", &UnauthorizedError{Message: "Invalid token"}
	}
	return userID, nil
}

func (s *RedisTokenStore) Evict(ctx context.Context, token string) error {
	return s.client.Del(ctx, "session:"+token).Err()
}

func generateToken(bytes int) (string, error) {
	b := make([]byte, bytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

package services

import (
	"context"
	"errors"

	"learnhub-backend/internal/models"
	"learnhub-backend/internal/repository"
)

// AuthService exchanges an email for a session token and validates tokens
// on later requests. Credentials are demo-grade: the password field is
// accepted and ignored, so this is not a real trust boundary.
type AuthService struct {
	users  *repository.UserRepo
	tokens TokenStore
}

func NewAuthService(users *repository.UserRepo, tokens TokenStore) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type ExchangeResult struct {
	User  models.PublicUser
	Token string
}

// Exchange looks the email up case-insensitively, mints a fresh token for
// this login, and records it. 32 random bytes keep tokens unique for the
// process lifetime.
func (s *AuthService) Exchange(ctx context.Context, email string) (*ExchangeResult, error) {
	if email == "" {
		return nil, &ValidationError{Fields: map[string]string{"email": "Email is required"}}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: "Invalid email or password"}
		}
		return nil, err
	}

	token, err := generateToken(32)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Save(ctx, token, user.ID); err != nil {
		return nil, err
	}

	s.users.UpdateLastLogin(ctx, user.ID)

	return &ExchangeResult{User: user.Public(), Token: token}, nil
}

// Validate resolves a token to the current user record. Unknown tokens
// fail with UnauthorizedError; there is no expiry in the reference store.
func (s *AuthService) Validate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, &UnauthorizedError{Message: "Not authenticated"}
	}

	userID, err := s.tokens.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &UnauthorizedError{Message: "Invalid token"}
		}
		return nil, err
	}
	return user, nil
}

// Logout evicts the token. Evicting an unknown token succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Evict(ctx, token)
}

package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"learnhub-backend/internal/models"
)

var ErrNotFound = errors.New("repository: not found")

// UserRepo holds the seeded identity directory in memory. All reads return
// copies and all writes go through explicit update commands, so no caller
// ever holds an alias of the stored record.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string
}

func NewUserRepo(seed []models.User) *UserRepo {
	r := &UserRepo{users: make(map[string]*models.User, len(seed))}
	for i := range seed {
		u := seed[i]
		r.users[u.ID] = &u
		r.order = append(r.order, u.ID)
	}
	return r
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

// GetByEmail matches case-insensitively.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		u := r.users[id]
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

// List returns all users in seed order.
func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *cloneUser(r.users[id]))
	}
	return out, nil
}

func (r *UserRepo) UpdateLastLogin(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	u.LastLoginAt = &now
	return nil
}

// Enroll appends courseID to the user's enrollment set. Idempotent: a
// second call for the same course is a no-op.
func (r *UserRepo) Enroll(ctx context.Context, id, courseID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !u.Enrolled(courseID) {
		u.EnrolledCourseIDs = append(u.EnrolledCourseIDs, courseID)
	}
	return cloneUser(u), nil
}

// UpdateProfile applies the non-empty fields of req and returns the new
// user value.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.FullName != "" {
		u.FullName = req.FullName
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.Avatar != "" {
		u.Avatar = req.Avatar
	}
	return cloneUser(u), nil
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.EnrolledCourseIDs = append([]string(nil), u.EnrolledCourseIDs...)
	if u.LastLoginAt != nil {
		t := *u.LastLoginAt
		c.LastLoginAt = &t
	}
	return &c
}

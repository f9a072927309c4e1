package services

import (
	"context"
	"errors"
	"strings"

	"learnhub-backend/internal/models"
	"learnhub-backend/internal/repository"
)

// CatalogService filters the course directory and handles enrollment.
type CatalogService struct {
	courses *repository.CourseRepo
	users   *repository.UserRepo
}

func NewCatalogService(courses *repository.CourseRepo, users *repository.UserRepo) *CatalogService {
	return &CatalogService{courses: courses, users: users}
}

// Filter applies text search (title or description, case-insensitive),
// exact category, and level. "All" and "All Levels" are wildcards; empty
// filters behave like wildcards too, so a blank request returns the full
// catalog.
func (s *CatalogService) Filter(ctx context.Context, query, category, level string) ([]models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	wantLevel := strings.ToLower(level)

	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) {
			continue
		}
		if category != "" && category != models.CategoryAll && c.Category != category {
			continue
		}
		if wantLevel != "" && wantLevel != strings.ToLower(models.LevelAll) &&
			strings.ToLower(string(c.Level)) != wantLevel {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Enroll adds the course to the user's enrollment set. Repeated calls for
// the same course are no-ops. The course's display-only enrolled_count is
// intentionally left untouched.
func (s *CatalogService) Enroll(ctx context.Context, userID, courseID string) (*models.User, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: "Course not found"}
		}
		return nil, err
	}

	user, err := s.users.Enroll(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}
	return user, nil
}

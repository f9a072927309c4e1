package repository

import (
	"context"

	"learnhub-backend/internal/models"
)

// CourseRepo serves the static course catalog. Courses are immutable, so
// List hands out fresh slices over shared values without locking.
type CourseRepo struct {
	courses []models.Course
	byID    map[string]models.Course
}

func NewCourseRepo(seed []models.Course) *CourseRepo {
	r := &CourseRepo{
		courses: append([]models.Course(nil), seed...),
		byID:    make(map[string]models.Course, len(seed)),
	}
	for _, c := range seed {
		r.byID[c.ID] = c
	}
	return r
}

func (r *CourseRepo) List(ctx context.Context) ([]models.Course, error) {
	return append([]models.Course(nil), r.courses...), nil
}

func (r *CourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

package repository

import (
	"context"
	"testing"

	"learnhub-backend/internal/models"
)

func testUsers() []models.User {
	return []models.User{
		{ID: "u1", FullName: "Ada Lovelace", Email: "ada@learnhub.io", Role: models.RoleStudent, ProgressPercentage: 90},
		{ID: "u2", FullName: "Alan Turing", Email: "alan@learnhub.io", Role: models.RoleStudent, ProgressPercentage: 70},
	}
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	repo := NewUserRepo(testUsers())
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
	}{
		{"exact", "ada@learnhub.io"},
		{"upper", "ADA@LEARNHUB.IO"},
		{"mixed", "Ada@LearnHub.io"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := repo.GetByEmail(ctx, tc.email)
			if err != nil {
				t.Fatalf("GetByEmail(%q) failed: %v", tc.email, err)
			}
			if u.ID != "u1" {
				t.Errorf("Expected u1, got %s", u.ID)
			}
		})
	}
}

func TestGetByEmail_Unknown(t *testing.T) {
	repo := NewUserRepo(testUsers())

	_, err := repo.GetByEmail(context.Background(), "nobody@learnhub.io")
	if err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestEnroll_Idempotent(t *testing.T) {
	repo := NewUserRepo(testUsers())
	ctx := context.Background()

	if _, err := repo.Enroll(ctx, "u1", "c99"); err != nil {
		t.Fatalf("First enroll failed: %v", err)
	}
	u, err := repo.Enroll(ctx, "u1", "c99")
	if err != nil {
		t.Fatalf("Second enroll failed: %v", err)
	}

	count := 0
	for _, id := range u.EnrolledCourseIDs {
		if id == "c99" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected c99 exactly once, found %d times", count)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	repo := NewUserRepo(testUsers())
	ctx := context.Background()

	u, _ := repo.GetByID(ctx, "u1")
	u.FullName = "Mutated"
	u.EnrolledCourseIDs = append(u.EnrolledCourseIDs, "c-evil")

	fresh, _ := repo.GetByID(ctx, "u1")
	if fresh.FullName != "Ada Lovelace" {
		t.Errorf("Stored record was mutated through a returned copy: %q", fresh.FullName)
	}
	if fresh.Enrolled("c-evil") {
		t.Error("Enrollment list was mutated through a returned copy")
	}
}

func TestUpdateProfile_ReturnsNewValue(t *testing.T) {
	repo := NewUserRepo(testUsers())
	ctx := context.Background()

	updated, err := repo.UpdateProfile(ctx, "u2", models.UpdateProfileRequest{FullName: "A. M. Turing", Phone: "+44-555-0100"})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.FullName != "A. M. Turing" || updated.Phone != "+44-555-0100" {
		t.Errorf("Update not applied: %+v", updated)
	}

	// Empty fields are left untouched.
	again, _ := repo.UpdateProfile(ctx, "u2", models.UpdateProfileRequest{Phone: "+44-555-0200"})
	if again.FullName != "A. M. Turing" {
		t.Errorf("Empty full_name overwrote existing value: %q", again.FullName)
	}
}

func TestSeedDirectoriesConsistent(t *testing.T) {
	users := SeedUsers()
	courses := NewCourseRepo(SeedCourses())
	ctx := context.Background()

	for _, u := range users {
		if u.ProgressPercentage < 0 || u.ProgressPercentage > 100 {
			t.Errorf("User %s has progress outside [0,100]: %d", u.ID, u.ProgressPercentage)
		}
		for _, cid := range u.EnrolledCourseIDs {
			if _, err := courses.GetByID(ctx, cid); err != nil {
				t.Errorf("User %s enrolled in unknown course %s", u.ID, cid)
			}
		}
	}
}

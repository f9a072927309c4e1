package services

import (
	"testing"

	"learnhub-backend/internal/models"
)

func TestRank_DenseAndStable(t *testing.T) {
	svc := NewLeaderboardService()

	users := []models.User{
		{ID: "a", Role: models.RoleStudent, ProgressPercentage: 90},
		{ID: "b", Role: models.RoleStudent, ProgressPercentage: 90},
		{ID: "c", Role: models.RoleStudent, ProgressPercentage: 70},
	}

	entries := svc.Rank(users)
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	// Equal scores keep input order and still get distinct ranks.
	wantOrder := []string{"a", "b", "c"}
	wantRanks := []int{1, 2, 3}
	for i, e := range entries {
		if e.UserID != wantOrder[i] {
			t.Errorf("Position %d: expected %s, got %s", i, wantOrder[i], e.UserID)
		}
		if e.Rank != wantRanks[i] {
			t.Errorf("Position %d: expected rank %d, got %d", i, wantRanks[i], e.Rank)
		}
	}
}

func TestRank_FiltersToStudents(t *testing.T) {
	svc := NewLeaderboardService()

	users := []models.User{
		{ID: "s1", Role: models.RoleStudent, ProgressPercentage: 50},
		{ID: "i1", Role: models.RoleInstructor, ProgressPercentage: 99},
		{ID: "a1", Role: models.RoleAdmin, ProgressPercentage: 99},
	}

	entries := svc.Rank(users)
	if len(entries) != 1 || entries[0].UserID != "s1" {
		t.Errorf("Expected only the student, got %+v", entries)
	}
}

func TestRank_BadgeTiers(t *testing.T) {
	svc := NewLeaderboardService()

	users := make([]models.User, 12)
	for i := range users {
		users[i] = models.User{
			ID:   string(rune('a' + i)),
			Role: models.RoleStudent,
			// Descending so input order is already rank order.
			ProgressPercentage: 100 - i,
		}
	}

	entries := svc.Rank(users)

	tests := []struct {
		rank  int
		badge string
	}{
		{1, models.BadgeGold},
		{2, models.BadgeSilver},
		{3, models.BadgeBronze},
		{4, models.BadgeTopPerformer},
		{10, models.BadgeTopPerformer},
		{11, ""},
		{12, ""},
	}

	for _, tc := range tests {
		e := entries[tc.rank-1]
		if e.Rank != tc.rank {
			t.Errorf("Expected rank %d at position %d, got %d", tc.rank, tc.rank-1, e.Rank)
		}
		if e.Badge != tc.badge {
			t.Errorf("Rank %d: expected badge %q, got %q", tc.rank, tc.badge, e.Badge)
		}
	}
}

func TestRank_EmptyDirectory(t *testing.T) {
	svc := NewLeaderboardService()
	if entries := svc.Rank(nil); len(entries) != 0 {
		t.Errorf("Expected empty leaderboard, got %+v", entries)
	}
}

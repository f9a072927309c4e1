package services

import (
	"sort"

	"learnhub-backend/internal/models"
)

// LeaderboardService orders students by overall progress into a dense
// 1-based ranking.
type LeaderboardService struct{}

func NewLeaderboardService() *LeaderboardService {
	return &LeaderboardService{}
}

// Rank filters to students and sorts descending by progress. The sort is
// stable, so equal scores keep their directory order and every position
// gets a distinct rank.
func (s *LeaderboardService) Rank(users []models.User) []models.LeaderboardEntry {
	students := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleStudent {
			students = append(students, u)
		}
	}

	sort.SliceStable(students, func(i, j int) bool {
		return students[i].ProgressPercentage > students[j].ProgressPercentage
	})

	entries := make([]models.LeaderboardEntry, len(students))
	for i, u := range students {
		entries[i] = models.LeaderboardEntry{
			UserID:             u.ID,
			FullName:           u.FullName,
			Role:               u.Role,
			ProgressPercentage: u.ProgressPercentage,
			Rank:               i + 1,
			Badge:              badgeFor(i + 1),
		}
	}
	return entries
}

func badgeFor(rank int) string {
	switch {
	case rank == 1:
		return models.BadgeGold
	case rank == 2:
		return models.BadgeSilver
	case rank == 3:
		return models.BadgeBronze
	case rank <= 10:
		return models.BadgeTopPerformer
	default:
		return ""
	}
}

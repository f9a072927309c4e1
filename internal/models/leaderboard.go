package models

// Badge tiers by dense leaderboard rank. An empty badge means no tier;
// the "Learner" default is a presentation concern.
const (
	BadgeGold         = "Gold"
	BadgeSilver       = "Silver"
	BadgeBronze       = "Bronze"
	BadgeTopPerformer = "Top Performer"
)

type LeaderboardEntry struct {
	UserID             string `json:"user_id"`
	FullName           string `json:"full_name"`
	Role               Role   `json:"role"`
	ProgressPercentage int    `json:"progress_percentage"`
	Rank               int    `json:"rank"`
	Badge              string `json:"badge,omitempty"`
}

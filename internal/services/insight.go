package services

import (
	"sort"
	"time"

	"learnhub-backend/internal/models"
)

// InsightService derives per-learner engagement and risk metrics from
// static identity attributes. Compute is pure and deterministic: the
// analytics overview re-runs it over the whole student population per
// request, so any hidden randomness would make aggregates jitter.
type InsightService struct{}

func NewInsightService() *InsightService {
	return &InsightService{}
}

const activeWindow = 30 * 24 * time.Hour

var recommendedActions = map[models.DropoutRisk][]string{
	models.RiskLow: {
		"Keep your current study rhythm",
		"Try an advanced course in your strongest category",
		"Mentor a peer to consolidate what you know",
	},
	models.RiskMedium: {
		"Schedule short, regular study sessions",
		"Revisit lessons you paused halfway",
		"Take a practice quiz this week",
	},
	models.RiskHigh: {
		"Restart with one course and a small daily goal",
		"Reach out to your instructor for a catch-up plan",
		"Attempt a short quiz to rebuild momentum",
	},
}

// Compute scores a single user. Both scores grow with progress and with
// enrollment count, clamped to [0,100]; risk buckets off completion
// probability.
func (s *InsightService) Compute(u models.User) models.Insight {
	enrolled := len(u.EnrolledCourseIDs)

	engagement := clamp(u.ProgressPercentage*7/10 + enrolled*6)
	completion := clamp(u.ProgressPercentage*6/10 + enrolled*5 + 10)

	risk := models.RiskHigh
	switch {
	case completion >= 70:
		risk = models.RiskLow
	case completion >= 40:
		risk = models.RiskMedium
	}

	return models.Insight{
		UserID:                u.ID,
		CompletionProbability: completion,
		EngagementScore:       engagement,
		DropoutRisk:           risk,
		RecommendedActions:    append([]string(nil), recommendedActions[risk]...),
	}
}

// Overview aggregates the insight derivation over all students plus the
// course catalog for the instructor/admin dashboard.
func (s *InsightService) Overview(users []models.User, courses []models.Course, now time.Time) models.AnalyticsOverview {
	overview := models.AnalyticsOverview{
		TotalUsers:   len(users),
		TotalCourses: len(courses),
		EngagementBuckets: []models.ScoreBucket{
			{Range: "0-25"}, {Range: "26-50"}, {Range: "51-75"}, {Range: "76-100"},
		},
	}

	var students int
	var engagementSum, completionSum int
	enrollmentsByMonth := make(map[string]int)

	for _, u := range users {
		if u.LastLoginAt != nil && now.Sub(*u.LastLoginAt) <= activeWindow {
			overview.ActiveUsers++
		}
		enrollmentsByMonth[u.CreatedAt.Format("Jan")]++

		if u.Role != models.RoleStudent {
			continue
		}
		students++

		in := s.Compute(u)
		engagementSum += in.EngagementScore
		completionSum += in.CompletionProbability

		switch in.DropoutRisk {
		case models.RiskLow:
			overview.LowRiskCount++
		case models.RiskMedium:
			overview.MediumRiskCount++
		default:
			overview.HighRiskCount++
		}

		switch {
		case in.EngagementScore <= 25:
			overview.EngagementBuckets[0].Count++
		case in.EngagementScore <= 50:
			overview.EngagementBuckets[1].Count++
		case in.EngagementScore <= 75:
			overview.EngagementBuckets[2].Count++
		default:
			overview.EngagementBuckets[3].Count++
		}
	}

	if students > 0 {
		overview.AvgEngagement = (engagementSum + students/2) / students
		overview.AvgCompletion = (completionSum + students/2) / students
	}

	byCategory := make(map[string]int)
	var categories []string
	for _, c := range courses {
		if byCategory[c.Category] == 0 {
			categories = append(categories, c.Category)
		}
		byCategory[c.Category]++
	}
	sort.Strings(categories)
	for _, cat := range categories {
		overview.CourseDistribution = append(overview.CourseDistribution, models.CategoryCount{
			Category: cat, Count: byCategory[cat],
		})
	}

	for _, m := range monthOrder {
		if n := enrollmentsByMonth[m]; n > 0 {
			overview.MonthlyEnrollments = append(overview.MonthlyEnrollments, models.MonthCount{Month: m, Count: n})
		}
	}

	return overview
}

var monthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

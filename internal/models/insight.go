package models

type DropoutRisk string

const (
	RiskLow    DropoutRisk = "low"
	RiskMedium DropoutRisk = "medium"
	RiskHigh   DropoutRisk = "high"
)

// Insight is derived per request from a User snapshot; never persisted.
type Insight struct {
	UserID                string      `json:"user_id"`
	CompletionProbability int         `json:"completion_probability"`
	EngagementScore       int         `json:"engagement_score"`
	DropoutRisk           DropoutRisk `json:"dropout_risk"`
	RecommendedActions    []string    `json:"recommended_actions"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// AnalyticsOverview is the instructor/admin dashboard aggregate, computed
// by re-running the insight derivation over the full student population.
type AnalyticsOverview struct {
	TotalUsers         int             `json:"total_users"`
	ActiveUsers        int             `json:"active_users"`
	TotalCourses       int             `json:"total_courses"`
	AvgEngagement      int             `json:"avg_engagement"`
	AvgCompletion      int             `json:"avg_completion"`
	LowRiskCount       int             `json:"low_risk_count"`
	MediumRiskCount    int             `json:"medium_risk_count"`
	HighRiskCount      int             `json:"high_risk_count"`
	EngagementBuckets  []ScoreBucket   `json:"engagement_distribution"`
	CourseDistribution []CategoryCount `json:"course_distribution"`
	MonthlyEnrollments []MonthCount    `json:"monthly_enrollments"`
}

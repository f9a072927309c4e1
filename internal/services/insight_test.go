package services

import (
	"reflect"
	"testing"
	"time"

	"learnhub-backend/internal/models"
)

func student(id string, progress int, enrolled ...string) models.User {
	return models.User{
		ID: id, Role: models.RoleStudent,
		ProgressPercentage: progress,
		EnrolledCourseIDs:  enrolled,
		CreatedAt:          time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCompute_Deterministic(t *testing.T) {
	svc := NewInsightService()
	u := student("u1", 73, "c1", "c2")

	first := svc.Compute(u)
	for i := 0; i < 10; i++ {
		if got := svc.Compute(u); !reflect.DeepEqual(got, first) {
			t.Fatalf("Compute not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestCompute_MonotoneInInputs(t *testing.T) {
	svc := NewInsightService()

	low := svc.Compute(student("u1", 20, "c1"))
	high := svc.Compute(student("u1", 80, "c1"))
	if high.EngagementScore < low.EngagementScore || high.CompletionProbability < low.CompletionProbability {
		t.Error("Higher progress must not lower scores")
	}

	few := svc.Compute(student("u1", 50, "c1"))
	many := svc.Compute(student("u1", 50, "c1", "c2", "c3"))
	if many.EngagementScore < few.EngagementScore || many.CompletionProbability < few.CompletionProbability {
		t.Error("More enrollments must not lower scores")
	}
}

func TestCompute_RiskTiers(t *testing.T) {
	svc := NewInsightService()

	tests := []struct {
		name string
		user models.User
		want models.DropoutRisk
	}{
		{"high progress, several courses", student("u1", 95, "c1", "c2", "c3"), models.RiskLow},
		{"middling progress", student("u2", 45, "c1"), models.RiskMedium},
		{"no progress, nothing enrolled", student("u3", 5), models.RiskHigh},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := svc.Compute(tc.user)
			if in.DropoutRisk != tc.want {
				t.Errorf("Expected %s risk, got %s (completion=%d)", tc.want, in.DropoutRisk, in.CompletionProbability)
			}
			if len(in.RecommendedActions) == 0 {
				t.Error("Recommended actions must be non-empty")
			}
		})
	}
}

func TestCompute_ScoresBounded(t *testing.T) {
	svc := NewInsightService()

	many := make([]string, 20)
	for i := range many {
		many[i] = "c"
	}
	in := svc.Compute(student("u1", 100, many...))
	if in.EngagementScore > 100 || in.CompletionProbability > 100 {
		t.Errorf("Scores exceed 100: %+v", in)
	}

	in = svc.Compute(student("u2", 0))
	if in.EngagementScore < 0 || in.CompletionProbability < 0 {
		t.Errorf("Scores below 0: %+v", in)
	}
}

func TestCompute_ActionsDistinctPerTier(t *testing.T) {
	svc := NewInsightService()

	low := svc.Compute(student("u1", 95, "c1", "c2"))
	medium := svc.Compute(student("u2", 45, "c1"))
	high := svc.Compute(student("u3", 0))

	if reflect.DeepEqual(low.RecommendedActions, medium.RecommendedActions) ||
		reflect.DeepEqual(medium.RecommendedActions, high.RecommendedActions) ||
		reflect.DeepEqual(low.RecommendedActions, high.RecommendedActions) {
		t.Error("Each risk tier must carry distinct guidance")
	}
}

func TestOverview_Aggregates(t *testing.T) {
	svc := NewInsightService()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	recent := now.Add(-24 * time.Hour)
	stale := now.Add(-60 * 24 * time.Hour)

	users := []models.User{
		student("u1", 95, "c1", "c2"),
		student("u2", 45, "c1"),
		student("u3", 0),
		{ID: "u4", Role: models.RoleInstructor, CreatedAt: now},
	}
	users[0].LastLoginAt = &recent
	users[1].LastLoginAt = &stale

	courses := []models.Course{
		{ID: "c1", Category: "Programming"},
		{ID: "c2", Category: "Programming"},
		{ID: "c3", Category: "Design"},
	}

	ov := svc.Overview(users, courses, now)

	if ov.TotalUsers != 4 || ov.TotalCourses != 3 {
		t.Errorf("Wrong totals: %+v", ov)
	}
	if ov.ActiveUsers != 1 {
		t.Errorf("Expected 1 active user, got %d", ov.ActiveUsers)
	}
	if ov.LowRiskCount+ov.MediumRiskCount+ov.HighRiskCount != 3 {
		t.Errorf("Risk counts must cover all 3 students: %+v", ov)
	}

	bucketTotal := 0
	for _, b := range ov.EngagementBuckets {
		bucketTotal += b.Count
	}
	if bucketTotal != 3 {
		t.Errorf("Engagement buckets must cover all 3 students, got %d", bucketTotal)
	}

	wantDist := []models.CategoryCount{{Category: "Design", Count: 1}, {Category: "Programming", Count: 2}}
	if !reflect.DeepEqual(ov.CourseDistribution, wantDist) {
		t.Errorf("Course distribution mismatch: %+v", ov.CourseDistribution)
	}
}

package services

import (
	"context"
	"fmt"
	"strings"

	"learnhub-backend/internal/repository"
)

// AssistantService maps free-text queries to canned guidance by keyword
// classification. Matching order is significant and fixed: the first rule
// whose keywords hit wins, so responses stay deterministic.
type AssistantService struct {
	courses *repository.CourseRepo
	rules   []assistantRule
}

type assistantRule struct {
	keywords []string
	respond  func(s *AssistantService, ctx context.Context) string
}

func NewAssistantService(courses *repository.CourseRepo) *AssistantService {
	s := &AssistantService{courses: courses}
	s.rules = []assistantRule{
		{[]string{"progress", "improve"}, (*AssistantService).progressReply},
		{[]string{"quiz"}, (*AssistantService).quizReply},
		{[]string{"course"}, (*AssistantService).courseReply},
		{[]string{"rank"}, (*AssistantService).rankReply},
		{[]string{"strategy", "plan"}, (*AssistantService).strategyReply},
	}
	return s
}

// Respond is total: every query yields exactly one non-empty reply.
func (s *AssistantService) Respond(ctx context.Context, query string) string {
	q := strings.ToLower(query)
	for _, rule := range s.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.respond(s, ctx)
			}
		}
	}
	return s.fallbackReply()
}

func (s *AssistantService) progressReply(ctx context.Context) string {
	return "How to Improve Your Progress\n\n" +
		"- Study consistently every day\n" +
		"- Revise after each lesson\n" +
		"- Attempt quizzes after learning\n" +
		"- Focus on weak areas\n\n" +
		"Consistency matters more than speed."
}

func (s *AssistantService) quizReply(ctx context.Context) string {
	return "Quiz Preparation Tips\n\n" +
		"- Revise key concepts\n" +
		"- Practice MCQs regularly\n" +
		"- Analyze mistakes\n" +
		"- Avoid rushing quizzes\n\n" +
		"Tip: accuracy beats attempts."
}

func (s *AssistantService) courseReply(ctx context.Context) string {
	courses, err := s.courses.List(ctx)
	if err != nil || len(courses) == 0 {
		return "Course Guidance\n\nFinish one course properly before starting another."
	}
	if len(courses) > 3 {
		courses = courses[:3]
	}
	var titles []string
	for _, c := range courses {
		titles = append(titles, "- "+c.Title)
	}
	return fmt.Sprintf("Course Guidance\n\nBased on popular learning paths, you can focus on:\n\n%s\n\nFinish one course properly before starting another.",
		strings.Join(titles, "\n"))
}

func (s *AssistantService) rankReply(ctx context.Context) string {
	return "Rank Improvement Tips\n\n" +
		"Your rank improves by:\n" +
		"- Completing courses\n" +
		"- Scoring well in quizzes\n" +
		"- Maintaining learning streaks\n\n" +
		"Small daily progress compounds fast."
}

func (s *AssistantService) strategyReply(ctx context.Context) string {
	return "Suggested Learning Strategy\n\n" +
		"Daily:\n- 45 mins learning\n- 15 mins revision\n\n" +
		"Weekly:\n- Review completed topics\n- Take at least 1 quiz\n\n" +
		"Consistency beats long study hours."
}

func (s *AssistantService) fallbackReply() string {
	return "I can help you with:\n" +
		"- Improving progress\n" +
		"- Quiz preparation\n" +
		"- Course suggestions\n" +
		"- Learning strategies\n\n" +
		"Ask about any of these to get started."
}

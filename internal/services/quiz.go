package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"learnhub-backend/internal/models"
)

// QuizService runs quiz attempts over a fixed ordered question bank.
// Attempts are transient: they live in memory for the life of the process
// and are never persisted.
type QuizService struct {
	questions []models.QuizQuestion

	mu       sync.Mutex
	attempts map[uuid.UUID]*models.QuizAttempt
}

func NewQuizService(questions []models.QuizQuestion) *QuizService {
	return &QuizService{
		questions: questions,
		attempts:  make(map[uuid.UUID]*models.QuizAttempt),
	}
}

// DefaultQuestions is the reference deployment's ML assessment bank.
func DefaultQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			ID: 1, Prompt: "What does ML stand for?",
			Options: []string{"Multi Logic", "Machine Learning", "Meta Language", "Main Loop"},
			Correct: 1,
		},
		{
			ID: 2, Prompt: "Which algorithm is supervised?",
			Options: []string{"K-Means", "Linear Regression", "Apriori", "PCA"},
			Correct: 1,
		},
		{
			ID: 3, Prompt: "Which language is most used for ML?",
			Options: []string{"Java", "Python", "C", "PHP"},
			Correct: 1,
		},
		{
			ID: 4, Prompt: "What is overfitting?",
			Options: []string{"Model performs well on new data", "Model learns noise", "Model is too simple", "Data is too large"},
			Correct: 1,
		},
		{
			ID: 5, Prompt: "Which library is used for deep learning?",
			Options: []string{"NumPy", "Pandas", "TensorFlow", "Matplotlib"},
			Correct: 2,
		},
	}
}

// Questions returns the bank without answer keys.
func (s *QuizService) Questions() []models.QuizQuestionView {
	views := make([]models.QuizQuestionView, len(s.questions))
	for i, q := range s.questions {
		views[i] = q.View()
	}
	return views
}

// StartAttempt opens a fresh attempt at question 0 with no answers.
func (s *QuizService) StartAttempt(userID string) *models.QuizAttempt {
	attempt := &models.QuizAttempt{
		ID:        uuid.New(),
		UserID:    userID,
		Answers:   make(map[int]int),
		StartedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.attempts[attempt.ID] = attempt
	s.mu.Unlock()

	return snapshot(attempt)
}

func (s *QuizService) GetAttempt(id uuid.UUID) (*models.QuizAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[id]
	if !ok {
		return nil, &NotFoundError{Message: "Attempt not found"}
	}
	return snapshot(attempt), nil
}

// RecordAnswer overwrites any prior answer at that index. Answering out of
// order and re-answering are both allowed while the attempt is open.
func (s *QuizService) RecordAnswer(id uuid.UUID, questionIndex, optionIndex int) (*models.QuizAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[id]
	if !ok {
		return nil, &NotFoundError{Message: "Attempt not found"}
	}
	if attempt.Submitted {
		return nil, &ConflictError{Message: "Attempt already submitted"}
	}
	if questionIndex < 0 || questionIndex >= len(s.questions) {
		return nil, &ValidationError{Fields: map[string]string{"question_index": "Question index out of range"}}
	}
	if optionIndex < 0 || optionIndex >= len(s.questions[questionIndex].Options) {
		return nil, &ValidationError{Fields: map[string]string{"option_index": "Option index out of range"}}
	}

	attempt.Answers[questionIndex] = optionIndex
	return snapshot(attempt), nil
}

// Advance moves to the next question; a no-op refusal on the last one.
func (s *QuizService) Advance(id uuid.UUID) (*models.QuizAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[id]
	if !ok {
		return nil, &NotFoundError{Message: "Attempt not found"}
	}
	if attempt.Submitted {
		return nil, &ConflictError{Message: "Attempt already submitted"}
	}
	if attempt.Current < len(s.questions)-1 {
		attempt.Current++
	}
	return snapshot(attempt), nil
}

// Submit grades the attempt and makes it terminal. Unanswered questions
// count as wrong; a zero-answer submission is valid and scores 0.
func (s *QuizService) Submit(id uuid.UUID) (*models.SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[id]
	if !ok {
		return nil, &NotFoundError{Message: "Attempt not found"}
	}
	if attempt.Submitted {
		return nil, &ConflictError{Message: "Attempt already submitted"}
	}

	correct := 0
	for i, q := range s.questions {
		if answer, answered := attempt.Answers[i]; answered && answer == q.Correct {
			correct++
		}
	}

	total := len(s.questions)
	attempt.Submitted = true
	attempt.CorrectCount = correct
	attempt.ScorePercent = (correct*100 + total/2) / total

	return &models.SubmitResult{
		AttemptID:    attempt.ID,
		CorrectCount: correct,
		WrongCount:   total - correct,
		Total:        total,
		ScorePercent: attempt.ScorePercent,
	}, nil
}

// Report renders the fixed-layout score report for a submitted attempt.
func (s *QuizService) Report(id uuid.UUID, displayName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[id]
	if !ok {
		return "", &NotFoundError{Message: "Attempt not found"}
	}
	if !attempt.Submitted {
		return "", &ConflictError{Message: "Attempt not submitted yet"}
	}

	var b strings.Builder
	b.WriteString("LearnHub Quiz Report\n")
	b.WriteString("====================\n\n")
	fmt.Fprintf(&b, "Learner:   %s\n", displayName)
	fmt.Fprintf(&b, "Taken at:  %s\n", attempt.StartedAt.Format(time.RFC1123))
	fmt.Fprintf(&b, "Questions: %d\n", len(s.questions))
	fmt.Fprintf(&b, "Correct:   %d\n", attempt.CorrectCount)
	fmt.Fprintf(&b, "Score:     %d%%\n", attempt.ScorePercent)
	return b.String(), nil
}

func snapshot(a *models.QuizAttempt) *models.QuizAttempt {
	c := *a
	c.Answers = make(map[int]int, len(a.Answers))
	for k, v := range a.Answers {
		c.Answers[k] = v
	}
	return &c
}

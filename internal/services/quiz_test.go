package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSubmit_ReferenceAnswers(t *testing.T) {
	svc := NewQuizService(DefaultQuestions())
	attempt := svc.StartAttempt("u1")

	// Answer key is [1,1,1,1,2]; these answers miss only question 2.
	answers := []int{1, 1, 2, 1, 2}
	for i, opt := range answers {
		if _, err := svc.RecordAnswer(attempt.ID, i, opt); err != nil {
			t.Fatalf("RecordAnswer(%d, %d) failed: %v", i, opt, err)
		}
	}

	result, err := svc.Submit(attempt.ID)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.CorrectCount != 4 {
		t.Errorf("Expected 4 correct, got %d", result.CorrectCount)
	}
	if result.ScorePercent != 80 {
		t.Errorf("Expected score 80, got %d", result.ScorePercent)
	}
	if result.WrongCount != 1 {
		t.Errorf("Expected 1 wrong, got %d", result.WrongCount)
	}
}

func TestSubmit_NoAnswers(t *testing.T) {
	svc := NewQuizService(DefaultQuestions())
	attempt := svc.StartAttempt("u1")

	result, err := svc.Submit(attempt.ID)
	if err != nil {
		t.Fatalf("Submit with zero answers failed: %v", err)
	}
	if result.CorrectCount != 0 || result.ScorePercent != 0 {
		t.Errorf("Expected 0/0, got %d correct, %d%%", result.CorrectCount, result.ScorePercent)
	}

	report, err := svc.Report(attempt.ID, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Report after zero-answer submit failed: %v", err)
	}
	if !strings.Contains(report, "Ada Lovelace") || !strings.Contains(report, "0%") {
		t.Errorf("Report missing name or score:\n%s", report)
	}
}

func TestRecordAnswer_Overwrites(t *testing.T) {
	svc := NewQuizService(DefaultQuestions())
	attempt := svc.StartAttempt("u1")

	svc.RecordAnswer(attempt.ID, 0, 3)
	updated, err := svc.RecordAnswer(attempt.ID, 0, 1)
	if err != nil {
		t.Fatalf("Re-answer failed: %v", err)
	}
	if updated.Answers[0] != 1 {
		t.Errorf("Expected overwritten answer 1, got %d", updated.Answers[0])
	}

	// Out of order is fine too.
	if _, err := svc.RecordAnswer(attempt.ID, 4, 2); err != nil {
		t.Errorf("Out-of-order answer rejected: %v", err)
	}
}

func TestRecordAnswer_OutOfRange(t *testing.T) {
	svc := NewQuizService(DefaultQuestions())
	attempt := svc.StartAttempt("u1")

	tests := []struct {
		name     string
		question int
		option   int
	}{
		{"question too high", 5, 0},
		{"question negative", -1, 0},
		{"option too high", 0, 4},
		{"option negative", 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.RecordAnswer(attempt.ID, tc.question, tc.option); err == nil {
				t.Error("Expected out-of-range rejection")
			}
		})
	}
}

func TestAdvance_StopsAtLastQuestion(t *testing.T) {
	svc := NewQuizService(DefaultQuestions())
	attempt := svc.StartAttempt("u1")

	for i := 0; i < 10; i++ {
		var err error
		if attempt, err = svc.Advance(attempt.ID); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
	}
	if attempt.Current != 4 {
		t.Errorf("Expected index pinned at 4, got %d", attempt.Current)
	}
}

func TestSubmitted_IsTerminal(t *testing.T) {
	svc := NewQuizService(DefaultQuestions())
	attempt := svc.StartAttempt("u1")
	svc.Submit(attempt.ID)

	if _, err := svc.Submit(attempt.ID); err == nil {
		t.Error("Second submit should fail")
	}
	if _, err := svc.RecordAnswer(attempt.ID, 0, 1); err == nil {
		t.Error("Answering a submitted attempt should fail")
	}
	if _, err := svc.Advance(attempt.ID); err == nil {
		t.Error("Advancing a submitted attempt should fail")
	}

	// A fresh attempt starts clean.
	fresh := svc.StartAttempt("u1")
	if fresh.Current != 0 || len(fresh.Answers) != 0 || fresh.Submitted {
		t.Errorf("New attempt not reset: %+v", fresh)
	}
}

func TestReport_RequiresSubmit(t *testing.T) {
	svc := NewQuizService(DefaultQuestions())
	attempt := svc.StartAttempt("u1")

	if _, err := svc.Report(attempt.ID, "Ada"); err == nil {
		t.Error("Report before submit should fail")
	}
	if _, err := svc.Report(uuid.New(), "Ada"); err == nil {
		t.Error("Report for unknown attempt should fail")
	}
}

func TestQuestions_HideAnswerKeys(t *testing.T) {
	svc := NewQuizService(DefaultQuestions())

	views := svc.Questions()
	if len(views) != 5 {
		t.Fatalf("Expected 5 questions, got %d", len(views))
	}
	for _, v := range views {
		if v.Prompt == "" || len(v.Options) == 0 {
			t.Errorf("Question view incomplete: %+v", v)
		}
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizQuestion is the full question including the answer key. The key is
// never serialized; clients receive QuizQuestionView.
type QuizQuestion struct {
	ID      int
	Prompt  string
	Options []string
	Correct int
}

type QuizQuestionView struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

func (q QuizQuestion) View() QuizQuestionView {
	return QuizQuestionView{ID: q.ID, Prompt: q.Prompt, Options: q.Options}
}

// QuizAttempt is one transient quiz session. Answers is sparse: only
// indexes the learner actually answered are present.
type QuizAttempt struct {
	ID        uuid.UUID   `json:"id"`
	UserID    string      `json:"user_id"`
	Current   int         `json:"current"`
	Answers   map[int]int `json:"answers"`
	Submitted bool        `json:"submitted"`
	StartedAt time.Time   `json:"started_at"`

	// Populated on submit.
	CorrectCount int `json:"correct_count"`
	ScorePercent int `json:"score_percent"`
}

type AnswerRequest struct {
	QuestionIndex int `json:"question_index"`
	OptionIndex   int `json:"option_index"`
}

type SubmitResult struct {
	AttemptID    uuid.UUID `json:"attempt_id"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	Total        int       `json:"total"`
	ScorePercent int       `json:"score_percent"`
}

package models

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Wildcards accepted by the catalog filter.
const (
	CategoryAll = "All"
	LevelAll    = "All Levels"
)

// Course is immutable reference data. EnrolledCount is a display-only
// counter and is not kept in sync with individual enrollments.
type Course struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Instructor    string  `json:"instructor"`
	Duration      string  `json:"duration"`
	Category      string  `json:"category"`
	Level         Level   `json:"level"`
	Rating        float64 `json:"rating"`
	LessonCount   int     `json:"lessons"`
	EnrolledCount int     `json:"enrolled_count"`
	Thumbnail     string  `json:"thumbnail"`
}

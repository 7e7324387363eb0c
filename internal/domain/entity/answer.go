package entity

import (
	"time"
)

// Answer belongs to exactly one question. CorrectAnswer is the per-answer
// accepted flag, distinct from Question.CorrectAnswer which stores the id.
type Answer struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	QuestionID    int64     `json:"question_id"`
	Description   string    `json:"description"`
	Rating        int64     `json:"rating"`
	CorrectAnswer bool      `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}

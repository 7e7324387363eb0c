package entity

import (
	"time"
)

// Comment is parented by exactly one of QuestionID or AnswerID, never both
// and never neither. The service enforces the rule before any store call and
// the comments table carries a CHECK constraint as a backstop.
type Comment struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	QuestionID  *int64    `json:"question_id,omitempty"`
	AnswerID    *int64    `json:"answer_id,omitempty"`
	Description string    `json:"description"`
	Rating      int64     `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

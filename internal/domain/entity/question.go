package entity

import (
	"time"
)

// Question is the aggregate root for the question domain.
// CorrectAnswer holds the id of the accepted answer once the asker picks one;
// the referenced answer must exist at the time the link is set.
//
// NumberOfAnswers is an informational counter carried on the row; it is not
// maintained by answer creation.
type Question struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Rating          int64     `json:"rating"`
	NumberOfAnswers int64     `json:"number_of_answers"`
	CorrectAnswer   *int64    `json:"correct_answer,omitempty"`
	Views           int64     `json:"views"`
	CreatedAt       time.Time `json:"created_at"`
	ModifiedAt      time.Time `json:"modified_at"`
}

package entity

import (
	"time"
)

// Profile holds the public user profile, one row per user. Image is an opaque
// blob stored on the row itself.
type Profile struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       []byte    `json:"image,omitempty"`
	Reputation  int64     `json:"reputation"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

package application

import (
	"errors"
	"fmt"

	"github.com/qaboard/qa-backend/internal/domain/repository"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrProfileNotFound  = errors.New("profile not found")

	// ErrValidation marks caller faults: missing required fields and rating
	// deltas outside {+1, -1}. Handlers map it to 400.
	ErrValidation = errors.New("validation failed")
)

// asNotFound converts the repository's generic not-found into the
// aggregate-specific error; other failures pass through untouched.
func asNotFound(err, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return err
}

func requireNonEmpty(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty: %w", name, ErrValidation)
	}
	return nil
}

// validateRatingDelta enforces the one-vote-per-call rule shared by
// question, answer and comment ratings.
func validateRatingDelta(delta int64) error {
	if delta != 1 && delta != -1 {
		return fmt.Errorf("rating delta must be +1 or -1: %w", ErrValidation)
	}
	return nil
}

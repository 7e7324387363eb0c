package repository

import (
	"context"

	"github.com/qaboard/qa-backend/internal/domain/entity"
)

// QuestionRepository defines the store operations for the question aggregate.
// Counter mutations (views, rating) must be applied atomically in the store,
// not read-modify-written in application code.
type QuestionRepository interface {
	Create(ctx context.Context, q *entity.Question) error
	GetByID(ctx context.Context, id int64) (*entity.Question, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Question, error)
	UpdateTitle(ctx context.Context, id int64, title string) (*entity.Question, error)
	UpdateDescription(ctx context.Context, id int64, description string) (*entity.Question, error)
	IncrementViews(ctx context.Context, id int64) (int64, error)
	AddRating(ctx context.Context, id int64, delta int64) (int64, error)
	SetCorrectAnswer(ctx context.Context, id, answerID int64) (*entity.Question, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	Remove(ctx context.Context, id int64) error
}

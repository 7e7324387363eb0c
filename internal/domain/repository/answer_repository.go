package repository

import (
	"context"

	"github.com/qaboard/qa-backend/internal/domain/entity"
)

// AnswerRepository defines the store operations for the answer aggregate.
type AnswerRepository interface {
	Create(ctx context.Context, a *entity.Answer) error
	GetByID(ctx context.Context, id int64) (*entity.Answer, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Answer, error)
	ListByQuestionID(ctx context.Context, questionID int64, limit, offset int) ([]*entity.Answer, error)
	UpdateDescription(ctx context.Context, id int64, description string) (*entity.Answer, error)
	AddRating(ctx context.Context, id int64, delta int64) (int64, error)
	SetCorrectFlag(ctx context.Context, id int64, correct bool) (*entity.Answer, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	CountByQuestionID(ctx context.Context, questionID int64) (int64, error)
	Remove(ctx context.Context, id int64) error
}

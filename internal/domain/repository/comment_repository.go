package repository

import (
	"context"

	"github.com/qaboard/qa-backend/internal/domain/entity"
)

// CommentRepository defines the store operations for the comment aggregate.
// ListAllByAnswerID is unpaginated; the answer removal cascade uses it to
// collect every dependent comment.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id int64) (*entity.Comment, error)
	ListByQuestionID(ctx context.Context, questionID int64, limit, offset int) ([]*entity.Comment, error)
	ListByAnswerID(ctx context.Context, answerID int64, limit, offset int) ([]*entity.Comment, error)
	ListAllByAnswerID(ctx context.Context, answerID int64) ([]*entity.Comment, error)
	UpdateDescription(ctx context.Context, id int64, description string) (*entity.Comment, error)
	AddRating(ctx context.Context, id int64, delta int64) (int64, error)
	Remove(ctx context.Context, id int64) error
}

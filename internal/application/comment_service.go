package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/internal/domain/entity"
	repo "github.com/qaboard/qa-backend/internal/domain/repository"
)

// CommentService owns the comment lifecycle. A comment hangs off exactly one
// parent, a question or an answer.
type CommentService struct {
	Comments repo.CommentRepository
	Logger   *logrus.Logger
}

func NewCommentService(comments repo.CommentRepository, logger *logrus.Logger) *CommentService {
	return &CommentService{Comments: comments, Logger: logger}
}

func (s *CommentService) FindComment(ctx context.Context, id int64) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrCommentNotFound)
	}
	return c, nil
}

func (s *CommentService) ListCommentsPaginatedByQuestionID(ctx context.Context, questionID int64, limit, offset int) ([]*entity.Comment, error) {
	return s.Comments.ListByQuestionID(ctx, questionID, limit, offset)
}

func (s *CommentService) ListCommentsPaginatedByAnswerID(ctx context.Context, answerID int64, limit, offset int) ([]*entity.Comment, error) {
	return s.Comments.ListByAnswerID(ctx, answerID, limit, offset)
}

// CreateComment requires exactly one parent id. Both set or neither set is a
// caller fault, checked before any store interaction.
func (s *CommentService) CreateComment(ctx context.Context, userID string, questionID, answerID *int64, description string) (*entity.Comment, error) {
	if err := requireNonEmpty("userID", userID); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("description", description); err != nil {
		return nil, err
	}
	if (questionID == nil) == (answerID == nil) {
		return nil, fmt.Errorf("comment needs exactly one of questionID or answerID: %w", ErrValidation)
	}

	c := &entity.Comment{UserID: userID, QuestionID: questionID, AnswerID: answerID, Description: description}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"comment_id": c.ID, "user_id": userID}).Info("comment created")
	}
	return c, nil
}

func (s *CommentService) UpdateDescription(ctx context.Context, id int64, description string) (*entity.Comment, error) {
	if err := requireNonEmpty("description", description); err != nil {
		return nil, err
	}
	c, err := s.Comments.UpdateDescription(ctx, id, description)
	if err != nil {
		return nil, asNotFound(err, ErrCommentNotFound)
	}
	return c, nil
}

func (s *CommentService) IncrementRating(ctx context.Context, id int64) (int64, error) {
	return s.UpdateRating(ctx, id, 1)
}

func (s *CommentService) DecrementRating(ctx context.Context, id int64) (int64, error) {
	return s.UpdateRating(ctx, id, -1)
}

func (s *CommentService) UpdateRating(ctx context.Context, id int64, delta int64) (int64, error) {
	if err := validateRatingDelta(delta); err != nil {
		return 0, err
	}
	rating, err := s.Comments.AddRating(ctx, id, delta)
	if err != nil {
		return 0, asNotFound(err, ErrCommentNotFound)
	}
	return rating, nil
}

func (s *CommentService) RemoveComment(ctx context.Context, id int64) error {
	if err := s.Comments.Remove(ctx, id); err != nil {
		return asNotFound(err, ErrCommentNotFound)
	}
	return nil
}

package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/internal/domain/entity"
	repo "github.com/qaboard/qa-backend/internal/domain/repository"
)

// AnswerService owns the answer lifecycle. Removing an answer cascades to its
// comments; that cascade lives here, not in the database schema.
type AnswerService struct {
	Answers  repo.AnswerRepository
	Comments repo.CommentRepository
	Events   ReputationPublisher
	Logger   *logrus.Logger
}

func NewAnswerService(answers repo.AnswerRepository, comments repo.CommentRepository, events ReputationPublisher, logger *logrus.Logger) *AnswerService {
	return &AnswerService{Answers: answers, Comments: comments, Events: events, Logger: logger}
}

func (s *AnswerService) FindAnswer(ctx context.Context, id int64) (*entity.Answer, error) {
	a, err := s.Answers.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrAnswerNotFound)
	}
	return a, nil
}

func (s *AnswerService) FindAnswers(ctx context.Context, limit, offset int) ([]*entity.Answer, error) {
	return s.Answers.List(ctx, limit, offset)
}

func (s *AnswerService) FindAnswersByQuestionID(ctx context.Context, questionID int64, limit, offset int) ([]*entity.Answer, error) {
	return s.Answers.ListByQuestionID(ctx, questionID, limit, offset)
}

func (s *AnswerService) CreateAnswer(ctx context.Context, userID string, questionID int64, description string) (*entity.Answer, error) {
	if err := requireNonEmpty("userID", userID); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("description", description); err != nil {
		return nil, err
	}

	a := &entity.Answer{UserID: userID, QuestionID: questionID, Description: description}
	if err := s.Answers.Create(ctx, a); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"answer_id": a.ID, "question_id": questionID}).Info("answer created")
	}
	return a, nil
}

func (s *AnswerService) UpdateDescription(ctx context.Context, id int64, description string) (*entity.Answer, error) {
	if err := requireNonEmpty("description", description); err != nil {
		return nil, err
	}
	a, err := s.Answers.UpdateDescription(ctx, id, description)
	if err != nil {
		return nil, asNotFound(err, ErrAnswerNotFound)
	}
	return a, nil
}

func (s *AnswerService) IncrementRating(ctx context.Context, id int64) (int64, error) {
	return s.UpdateRating(ctx, id, 1)
}

func (s *AnswerService) DecrementRating(ctx context.Context, id int64) (int64, error) {
	return s.UpdateRating(ctx, id, -1)
}

func (s *AnswerService) UpdateRating(ctx context.Context, id int64, delta int64) (int64, error) {
	if err := validateRatingDelta(delta); err != nil {
		return 0, err
	}

	a, err := s.Answers.GetByID(ctx, id)
	if err != nil {
		return 0, asNotFound(err, ErrAnswerNotFound)
	}

	rating, err := s.Answers.AddRating(ctx, id, delta)
	if err != nil {
		return 0, asNotFound(err, ErrAnswerNotFound)
	}

	publishReputation(ctx, s.Events, s.Logger, a.UserID, delta*ReputationAnswerVote, ReasonAnswerVote)
	return rating, nil
}

// SetCorrectAnswer marks this answer as accepted. The question-side reference
// is a separate aggregate field; the boundary keeps the two in sync.
func (s *AnswerService) SetCorrectAnswer(ctx context.Context, id int64) (*entity.Answer, error) {
	a, err := s.Answers.SetCorrectFlag(ctx, id, true)
	if err != nil {
		return nil, asNotFound(err, ErrAnswerNotFound)
	}
	return a, nil
}

func (s *AnswerService) UnsetCorrectAnswer(ctx context.Context, id int64) (*entity.Answer, error) {
	a, err := s.Answers.SetCorrectFlag(ctx, id, false)
	if err != nil {
		return nil, asNotFound(err, ErrAnswerNotFound)
	}
	return a, nil
}

func (s *AnswerService) CountNumberOfAnswersOfUser(ctx context.Context, userID string) (int64, error) {
	if err := requireNonEmpty("userID", userID); err != nil {
		return 0, err
	}
	return s.Answers.CountByUserID(ctx, userID)
}

func (s *AnswerService) CountNumberOfAnswersOfQuestion(ctx context.Context, questionID int64) (int64, error) {
	return s.Answers.CountByQuestionID(ctx, questionID)
}

// RemoveAnswer deletes the answer, then every comment parented to it, one
// delete at a time. There is no wrapping transaction: if a comment delete
// fails the answer stays gone, the remaining comments stay, and the error
// propagates.
func (s *AnswerService) RemoveAnswer(ctx context.Context, id int64) error {
	if err := s.Answers.Remove(ctx, id); err != nil {
		return asNotFound(err, ErrAnswerNotFound)
	}

	comments, err := s.Comments.ListAllByAnswerID(ctx, id)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if err := s.Comments.Remove(ctx, c.ID); err != nil {
			return asNotFound(err, ErrCommentNotFound)
		}
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"answer_id": id, "comments": len(comments)}).Info("answer removed")
	}
	return nil
}

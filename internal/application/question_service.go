package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/internal/domain/entity"
	repo "github.com/qaboard/qa-backend/internal/domain/repository"
)

// QuestionService owns the question lifecycle and the cross-reference to the
// accepted answer. It needs the answer repository for exactly one thing:
// proving the answer exists before the question links to it.
type QuestionService struct {
	Questions repo.QuestionRepository
	Answers   repo.AnswerRepository
	Events    ReputationPublisher
	Logger    *logrus.Logger
}

func NewQuestionService(questions repo.QuestionRepository, answers repo.AnswerRepository, events ReputationPublisher, logger *logrus.Logger) *QuestionService {
	return &QuestionService{Questions: questions, Answers: answers, Events: events, Logger: logger}
}

func (s *QuestionService) FindQuestion(ctx context.Context, id int64) (*entity.Question, error) {
	q, err := s.Questions.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrQuestionNotFound)
	}
	return q, nil
}

// FindQuestions returns one page of questions; offset counts pages, not rows.
func (s *QuestionService) FindQuestions(ctx context.Context, limit, offset int) ([]*entity.Question, error) {
	return s.Questions.List(ctx, limit, offset)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, userID, title, description string) (*entity.Question, error) {
	if err := requireNonEmpty("userID", userID); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("title", title); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("description", description); err != nil {
		return nil, err
	}

	q := &entity.Question{UserID: userID, Title: title, Description: description}
	if err := s.Questions.Create(ctx, q); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"question_id": q.ID, "user_id": userID}).Info("question created")
	}
	return q, nil
}

func (s *QuestionService) UpdateTitle(ctx context.Context, id int64, title string) (*entity.Question, error) {
	if err := requireNonEmpty("title", title); err != nil {
		return nil, err
	}
	q, err := s.Questions.UpdateTitle(ctx, id, title)
	if err != nil {
		return nil, asNotFound(err, ErrQuestionNotFound)
	}
	return q, nil
}

func (s *QuestionService) UpdateDescription(ctx context.Context, id int64, description string) (*entity.Question, error) {
	if err := requireNonEmpty("description", description); err != nil {
		return nil, err
	}
	q, err := s.Questions.UpdateDescription(ctx, id, description)
	if err != nil {
		return nil, asNotFound(err, ErrQuestionNotFound)
	}
	return q, nil
}

func (s *QuestionService) IncrementView(ctx context.Context, id int64) (int64, error) {
	views, err := s.Questions.IncrementViews(ctx, id)
	if err != nil {
		return 0, asNotFound(err, ErrQuestionNotFound)
	}
	return views, nil
}

func (s *QuestionService) UpvoteRating(ctx context.Context, id int64) (int64, error) {
	return s.UpdateRating(ctx, id, 1)
}

func (s *QuestionService) DownvoteRating(ctx context.Context, id int64) (int64, error) {
	return s.UpdateRating(ctx, id, -1)
}

// UpdateRating applies a single vote. Deltas other than +1/-1 are rejected
// before any store interaction.
func (s *QuestionService) UpdateRating(ctx context.Context, id int64, delta int64) (int64, error) {
	if err := validateRatingDelta(delta); err != nil {
		return 0, err
	}

	q, err := s.Questions.GetByID(ctx, id)
	if err != nil {
		return 0, asNotFound(err, ErrQuestionNotFound)
	}

	rating, err := s.Questions.AddRating(ctx, id, delta)
	if err != nil {
		return 0, asNotFound(err, ErrQuestionNotFound)
	}

	publishReputation(ctx, s.Events, s.Logger, q.UserID, delta*ReputationQuestionVote, ReasonQuestionVote)
	return rating, nil
}

// SetCorrectAnswer links a question to its accepted answer. The answer is
// resolved first; a missing answer fails the call before the question row is
// touched, so a question never references a nonexistent answer.
func (s *QuestionService) SetCorrectAnswer(ctx context.Context, questionID, answerID int64) (*entity.Question, error) {
	answer, err := s.Answers.GetByID(ctx, answerID)
	if err != nil {
		return nil, asNotFound(err, ErrAnswerNotFound)
	}

	q, err := s.Questions.SetCorrectAnswer(ctx, questionID, answer.ID)
	if err != nil {
		return nil, asNotFound(err, ErrQuestionNotFound)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"question_id": questionID, "answer_id": answerID}).Info("correct answer set")
	}
	publishReputation(ctx, s.Events, s.Logger, answer.UserID, ReputationAccepted, ReasonAnswerAccepted)
	return q, nil
}

// GetCount returns how many questions the user owns; unknown users count 0.
func (s *QuestionService) GetCount(ctx context.Context, userID string) (int64, error) {
	if err := requireNonEmpty("userID", userID); err != nil {
		return 0, err
	}
	return s.Questions.CountByUserID(ctx, userID)
}

// RemoveQuestion deletes only the question row. Answers and their comments
// are left in place.
func (s *QuestionService) RemoveQuestion(ctx context.Context, id int64) error {
	if err := s.Questions.Remove(ctx, id); err != nil {
		return asNotFound(err, ErrQuestionNotFound)
	}
	if s.Logger != nil {
		s.Logger.WithField("question_id", id).Info("question removed")
	}
	return nil
}

package application

import (
	"context"
	"errors"
	"testing"

	"github.com/qaboard/qa-backend/internal/domain/repository"
)

func newAnswerService() (*AnswerService, *fakeAnswerRepo, *fakeCommentRepo, *fakePublisher) {
	answers := newFakeAnswerRepo()
	comments := newFakeCommentRepo()
	pub := &fakePublisher{}
	return NewAnswerService(answers, comments, pub, nil), answers, comments, pub
}

func TestCreateAnswer(t *testing.T) {
	svc, _, _, _ := newAnswerService()
	ctx := context.Background()

	a, err := svc.CreateAnswer(ctx, "answerer", 7, "use a worker pool")
	if err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if a.QuestionID != 7 {
		t.Fatalf("expected question id 7, got %d", a.QuestionID)
	}
	if a.CorrectAnswer {
		t.Fatal("new answer must not be marked correct")
	}

	if _, err := svc.CreateAnswer(ctx, "", 7, "d"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty user, got %v", err)
	}
	if _, err := svc.CreateAnswer(ctx, "answerer", 7, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty description, got %v", err)
	}
}

func TestFindAnswersByQuestionID(t *testing.T) {
	svc, _, _, _ := newAnswerService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateAnswer(ctx, "answerer", 1, "d"); err != nil {
			t.Fatalf("CreateAnswer: %v", err)
		}
	}
	if _, err := svc.CreateAnswer(ctx, "answerer", 2, "d"); err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}

	got, err := svc.FindAnswersByQuestionID(ctx, 1, 10, 0)
	if err != nil {
		t.Fatalf("FindAnswersByQuestionID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(got))
	}
	for _, a := range got {
		if a.QuestionID != 1 {
			t.Fatalf("answer %d belongs to question %d", a.ID, a.QuestionID)
		}
	}
}

func TestAnswerRating(t *testing.T) {
	svc, _, _, pub := newAnswerService()
	ctx := context.Background()

	a, err := svc.CreateAnswer(ctx, "answerer", 1, "d")
	if err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}

	rating, err := svc.IncrementRating(ctx, a.ID)
	if err != nil {
		t.Fatalf("IncrementRating: %v", err)
	}
	if rating != 1 {
		t.Fatalf("expected rating 1, got %d", rating)
	}

	rating, err = svc.DecrementRating(ctx, a.ID)
	if err != nil {
		t.Fatalf("DecrementRating: %v", err)
	}
	if rating != 0 {
		t.Fatalf("expected rating 0, got %d", rating)
	}

	if _, err := svc.UpdateRating(ctx, a.ID, 3); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for delta 3, got %v", err)
	}

	if len(pub.events) != 2 {
		t.Fatalf("expected 2 reputation events, got %d", len(pub.events))
	}
	if pub.events[0].Delta != ReputationAnswerVote || pub.events[0].Reason != ReasonAnswerVote {
		t.Fatalf("unexpected event %+v", pub.events[0])
	}
	if pub.events[1].Delta != -ReputationAnswerVote {
		t.Fatalf("unexpected downvote delta %d", pub.events[1].Delta)
	}
}

func TestAnswerCorrectFlag(t *testing.T) {
	svc, _, _, _ := newAnswerService()
	ctx := context.Background()

	a, err := svc.CreateAnswer(ctx, "answerer", 1, "d")
	if err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}

	marked, err := svc.SetCorrectAnswer(ctx, a.ID)
	if err != nil {
		t.Fatalf("SetCorrectAnswer: %v", err)
	}
	if !marked.CorrectAnswer {
		t.Fatal("expected correct flag set")
	}

	unmarked, err := svc.UnsetCorrectAnswer(ctx, a.ID)
	if err != nil {
		t.Fatalf("UnsetCorrectAnswer: %v", err)
	}
	if unmarked.CorrectAnswer {
		t.Fatal("expected correct flag cleared")
	}

	if _, err := svc.SetCorrectAnswer(ctx, 99); !errors.Is(err, ErrAnswerNotFound) {
		t.Fatalf("expected ErrAnswerNotFound, got %v", err)
	}
}

func TestAnswerCounts(t *testing.T) {
	svc, _, _, _ := newAnswerService()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.CreateAnswer(ctx, "user-1", 1, "d"); err != nil {
			t.Fatalf("CreateAnswer: %v", err)
		}
	}
	if _, err := svc.CreateAnswer(ctx, "user-2", 1, "d"); err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}

	n, err := svc.CountNumberOfAnswersOfUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("CountNumberOfAnswersOfUser: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}

	n, err = svc.CountNumberOfAnswersOfQuestion(ctx, 1)
	if err != nil {
		t.Fatalf("CountNumberOfAnswersOfQuestion: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}

	if _, err := svc.CountNumberOfAnswersOfUser(ctx, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty user, got %v", err)
	}
}

func TestRemoveAnswerCascadesComments(t *testing.T) {
	svc, _, comments, _ := newAnswerService()
	ctx := context.Background()
	commentSvc := NewCommentService(comments, nil)

	a, err := svc.CreateAnswer(ctx, "answerer", 1, "d")
	if err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := commentSvc.CreateComment(ctx, "commenter", nil, &a.ID, "nice"); err != nil {
			t.Fatalf("CreateComment: %v", err)
		}
	}
	questionID := int64(1)
	unrelated, err := commentSvc.CreateComment(ctx, "commenter", &questionID, nil, "on the question")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if err := svc.RemoveAnswer(ctx, a.ID); err != nil {
		t.Fatalf("RemoveAnswer: %v", err)
	}

	left, err := comments.ListAllByAnswerID(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListAllByAnswerID: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected all answer comments removed, %d left", len(left))
	}
	// a comment on the question is untouched
	if _, err := comments.GetByID(ctx, unrelated.ID); err != nil {
		t.Fatalf("question comment should survive: %v", err)
	}
}

func TestRemoveAnswerNotFound(t *testing.T) {
	svc, _, comments, _ := newAnswerService()
	ctx := context.Background()

	answerID := int64(99)
	c, err := NewCommentService(comments, nil).CreateComment(ctx, "commenter", nil, &answerID, "orphan")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if err := svc.RemoveAnswer(ctx, answerID); !errors.Is(err, ErrAnswerNotFound) {
		t.Fatalf("expected ErrAnswerNotFound, got %v", err)
	}
	// missing answer must not trigger the comment cascade
	if _, err := comments.GetByID(ctx, c.ID); err != nil {
		t.Fatalf("comment should survive: %v", err)
	}
}

func TestRemoveAnswerPartialCascade(t *testing.T) {
	svc, answers, comments, _ := newAnswerService()
	ctx := context.Background()
	commentSvc := NewCommentService(comments, nil)

	a, err := svc.CreateAnswer(ctx, "answerer", 1, "d")
	if err != nil {
		t.Fatalf("CreateAnswer: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := commentSvc.CreateComment(ctx, "commenter", nil, &a.ID, "nice"); err != nil {
			t.Fatalf("CreateComment: %v", err)
		}
	}
	comments.removeErrAfter = 1

	err = svc.RemoveAnswer(ctx, a.ID)
	if err == nil {
		t.Fatal("expected cascade failure to propagate")
	}
	// no rollback: the answer stays gone, the remaining comments stay
	if _, gerr := answers.GetByID(ctx, a.ID); !errors.Is(gerr, repository.ErrNotFound) {
		t.Fatalf("answer should be gone, got %v", gerr)
	}
	left, _ := comments.ListAllByAnswerID(ctx, a.ID)
	if len(left) != 2 {
		t.Fatalf("expected 2 comments left, got %d", len(left))
	}
}

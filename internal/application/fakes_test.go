package application

import (
	"context"
	"sort"
	"time"

	"github.com/qaboard/qa-backend/internal/domain/entity"
	"github.com/qaboard/qa-backend/internal/domain/repository"
)

// In-memory repositories backing the service tests. Pagination mirrors the
// store: offset counts pages, so page n starts at row n*limit.

func pageSlice[T any](items []T, limit, offset int) []T {
	start := offset * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type fakeQuestionRepo struct {
	nextID    int64
	questions map[int64]*entity.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[int64]*entity.Question{}}
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *entity.Question) error {
	r.nextID++
	q.ID = r.nextID
	q.CreatedAt = time.Now()
	q.ModifiedAt = q.CreatedAt
	r.questions[q.ID] = q
	return nil
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id int64) (*entity.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return q, nil
}

func (r *fakeQuestionRepo) List(_ context.Context, limit, offset int) ([]*entity.Question, error) {
	out := make([]*entity.Question, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeQuestionRepo) UpdateTitle(_ context.Context, id int64, title string) (*entity.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	q.Title = title
	return q, nil
}

func (r *fakeQuestionRepo) UpdateDescription(_ context.Context, id int64, description string) (*entity.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	q.Description = description
	return q, nil
}

func (r *fakeQuestionRepo) IncrementViews(_ context.Context, id int64) (int64, error) {
	q, ok := r.questions[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	q.Views++
	return q.Views, nil
}

func (r *fakeQuestionRepo) AddRating(_ context.Context, id int64, delta int64) (int64, error) {
	q, ok := r.questions[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	q.Rating += delta
	return q.Rating, nil
}

func (r *fakeQuestionRepo) SetCorrectAnswer(_ context.Context, id, answerID int64) (*entity.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	q.CorrectAnswer = &answerID
	return q, nil
}

func (r *fakeQuestionRepo) CountByUserID(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, q := range r.questions {
		if q.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeQuestionRepo) Remove(_ context.Context, id int64) error {
	if _, ok := r.questions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.questions, id)
	return nil
}

type fakeAnswerRepo struct {
	nextID  int64
	answers map[int64]*entity.Answer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: map[int64]*entity.Answer{}}
}

func (r *fakeAnswerRepo) Create(_ context.Context, a *entity.Answer) error {
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	a.ModifiedAt = a.CreatedAt
	r.answers[a.ID] = a
	return nil
}

func (r *fakeAnswerRepo) GetByID(_ context.Context, id int64) (*entity.Answer, error) {
	a, ok := r.answers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (r *fakeAnswerRepo) sorted() []*entity.Answer {
	out := make([]*entity.Answer, 0, len(r.answers))
	for _, a := range r.answers {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeAnswerRepo) List(_ context.Context, limit, offset int) ([]*entity.Answer, error) {
	return pageSlice(r.sorted(), limit, offset), nil
}

func (r *fakeAnswerRepo) ListByQuestionID(_ context.Context, questionID int64, limit, offset int) ([]*entity.Answer, error) {
	matching := make([]*entity.Answer, 0)
	for _, a := range r.sorted() {
		if a.QuestionID == questionID {
			matching = append(matching, a)
		}
	}
	return pageSlice(matching, limit, offset), nil
}

func (r *fakeAnswerRepo) UpdateDescription(_ context.Context, id int64, description string) (*entity.Answer, error) {
	a, ok := r.answers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Description = description
	return a, nil
}

func (r *fakeAnswerRepo) AddRating(_ context.Context, id int64, delta int64) (int64, error) {
	a, ok := r.answers[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	a.Rating += delta
	return a.Rating, nil
}

func (r *fakeAnswerRepo) SetCorrectFlag(_ context.Context, id int64, correct bool) (*entity.Answer, error) {
	a, ok := r.answers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.CorrectAnswer = correct
	return a, nil
}

func (r *fakeAnswerRepo) CountByUserID(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, a := range r.answers {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeAnswerRepo) CountByQuestionID(_ context.Context, questionID int64) (int64, error) {
	var n int64
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			n++
		}
	}
	return n, nil
}

func (r *fakeAnswerRepo) Remove(_ context.Context, id int64) error {
	if _, ok := r.answers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.answers, id)
	return nil
}

type fakeCommentRepo struct {
	nextID   int64
	comments map[int64]*entity.Comment

	// removeErrAfter fails Remove once this many removals succeeded;
	// zero disables the fault.
	removeErrAfter int
	removed        int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]*entity.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	c.ModifiedAt = c.CreatedAt
	r.comments[c.ID] = c
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id int64) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeCommentRepo) sorted() []*entity.Comment {
	out := make([]*entity.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeCommentRepo) ListByQuestionID(_ context.Context, questionID int64, limit, offset int) ([]*entity.Comment, error) {
	matching := make([]*entity.Comment, 0)
	for _, c := range r.sorted() {
		if c.QuestionID != nil && *c.QuestionID == questionID {
			matching = append(matching, c)
		}
	}
	return pageSlice(matching, limit, offset), nil
}

func (r *fakeCommentRepo) ListByAnswerID(_ context.Context, answerID int64, limit, offset int) ([]*entity.Comment, error) {
	all, _ := r.ListAllByAnswerID(context.Background(), answerID)
	return pageSlice(all, limit, offset), nil
}

func (r *fakeCommentRepo) ListAllByAnswerID(_ context.Context, answerID int64) ([]*entity.Comment, error) {
	matching := make([]*entity.Comment, 0)
	for _, c := range r.sorted() {
		if c.AnswerID != nil && *c.AnswerID == answerID {
			matching = append(matching, c)
		}
	}
	return matching, nil
}

func (r *fakeCommentRepo) UpdateDescription(_ context.Context, id int64, description string) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Description = description
	return c, nil
}

func (r *fakeCommentRepo) AddRating(_ context.Context, id int64, delta int64) (int64, error) {
	c, ok := r.comments[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	c.Rating += delta
	return c.Rating, nil
}

func (r *fakeCommentRepo) Remove(_ context.Context, id int64) error {
	if r.removeErrAfter > 0 && r.removed >= r.removeErrAfter {
		return context.DeadlineExceeded
	}
	if _, ok := r.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.comments, id)
	r.removed++
	return nil
}

type fakeProfileRepo struct {
	nextID   int64
	profiles map[int64]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[int64]*entity.Profile{}}
}

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.ModifiedAt = p.CreatedAt
	r.profiles[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id int64) (*entity.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProfileRepo) List(_ context.Context, limit, offset int) ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return pageSlice(out, limit, offset), nil
}

func (r *fakeProfileRepo) UpdateFirstName(_ context.Context, id int64, firstName string) (*entity.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.FirstName = firstName
	return p, nil
}

func (r *fakeProfileRepo) UpdateLastName(_ context.Context, id int64, lastName string) (*entity.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.LastName = lastName
	return p, nil
}

func (r *fakeProfileRepo) UpdateDescription(_ context.Context, id int64, description string) (*entity.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Description = description
	return p, nil
}

func (r *fakeProfileRepo) UpdateImage(_ context.Context, id int64, image []byte) (*entity.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Image = image
	return p, nil
}

func (r *fakeProfileRepo) AddReputation(_ context.Context, id int64, delta int64) (int64, error) {
	p, ok := r.profiles[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	p.Reputation += delta
	return p.Reputation, nil
}

func (r *fakeProfileRepo) Remove(_ context.Context, id int64) error {
	if _, ok := r.profiles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.profiles, id)
	return nil
}

// fakePublisher records every reputation event.
type fakePublisher struct {
	events []ReputationEvent
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	ev, ok := body.(ReputationEvent)
	if !ok {
		return nil
	}
	p.events = append(p.events, ev)
	return nil
}

var (
	_ repository.QuestionRepository = (*fakeQuestionRepo)(nil)
	_ repository.AnswerRepository   = (*fakeAnswerRepo)(nil)
	_ repository.CommentRepository  = (*fakeCommentRepo)(nil)
	_ repository.ProfileRepository  = (*fakeProfileRepo)(nil)
)

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qaboard/qa-backend/internal/domain/entity"
	"github.com/qaboard/qa-backend/internal/domain/repository"
)

const answerColumns = `id, user_id, question_id, description, rating, correct_answer, created_at, modified_at`

type AnswerRepository struct {
	pool *pgxpool.Pool
}

func NewAnswerRepository(pool *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{pool: pool}
}

func scanAnswer(row pgx.Row) (*entity.Answer, error) {
	a := &entity.Answer{}
	if err := row.Scan(&a.ID, &a.UserID, &a.QuestionID, &a.Description, &a.Rating,
		&a.CorrectAnswer, &a.CreatedAt, &a.ModifiedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AnswerRepository) Create(ctx context.Context, a *entity.Answer) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO answers (user_id, question_id, description)
		VALUES ($1, $2, $3)
		RETURNING id, rating, correct_answer, created_at, modified_at
	`, a.UserID, a.QuestionID, a.Description)

	return row.Scan(&a.ID, &a.Rating, &a.CorrectAnswer, &a.CreatedAt, &a.ModifiedAt)
}

func (r *AnswerRepository) GetByID(ctx context.Context, id int64) (*entity.Answer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+answerColumns+`
		FROM answers
		WHERE id = $1
	`, id)

	return scanAnswer(row)
}

func (r *AnswerRepository) List(ctx context.Context, limit, offset int) ([]*entity.Answer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+answerColumns+`
		FROM answers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAnswers(rows, limit)
}

func (r *AnswerRepository) ListByQuestionID(ctx context.Context, questionID int64, limit, offset int) ([]*entity.Answer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+answerColumns+`
		FROM answers
		WHERE question_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, questionID, limit, offset*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAnswers(rows, limit)
}

func collectAnswers(rows pgx.Rows, capHint int) ([]*entity.Answer, error) {
	answers := make([]*entity.Answer, 0, capHint)
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (r *AnswerRepository) UpdateDescription(ctx context.Context, id int64, description string) (*entity.Answer, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE answers
		SET description = $2, modified_at = now()
		WHERE id = $1
		RETURNING `+answerColumns+`
	`, id, description)

	return scanAnswer(row)
}

func (r *AnswerRepository) AddRating(ctx context.Context, id int64, delta int64) (int64, error) {
	var rating int64
	err := r.pool.QueryRow(ctx, `
		UPDATE answers
		SET rating = rating + $2, modified_at = now()
		WHERE id = $1
		RETURNING rating
	`, id, delta).Scan(&rating)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	return rating, err
}

func (r *AnswerRepository) SetCorrectFlag(ctx context.Context, id int64, correct bool) (*entity.Answer, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE answers
		SET correct_answer = $2, modified_at = now()
		WHERE id = $1
		RETURNING `+answerColumns+`
	`, id, correct)

	return scanAnswer(row)
}

func (r *AnswerRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM answers WHERE user_id = $1
	`, userID).Scan(&count)
	return count, err
}

func (r *AnswerRepository) CountByQuestionID(ctx context.Context, questionID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM answers WHERE question_id = $1
	`, questionID).Scan(&count)
	return count, err
}

func (r *AnswerRepository) Remove(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.AnswerRepository = (*AnswerRepository)(nil)

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qaboard/qa-backend/internal/domain/entity"
	"github.com/qaboard/qa-backend/internal/domain/repository"
)

const questionColumns = `id, user_id, title, description, rating, number_of_answers, correct_answer, views, created_at, modified_at`

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func scanQuestion(row pgx.Row) (*entity.Question, error) {
	q := &entity.Question{}
	if err := row.Scan(&q.ID, &q.UserID, &q.Title, &q.Description, &q.Rating,
		&q.NumberOfAnswers, &q.CorrectAnswer, &q.Views, &q.CreatedAt, &q.ModifiedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return q, nil
}

func (r *QuestionRepository) Create(ctx context.Context, q *entity.Question) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO questions (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, rating, number_of_answers, views, created_at, modified_at
	`, q.UserID, q.Title, q.Description)

	return row.Scan(&q.ID, &q.Rating, &q.NumberOfAnswers, &q.Views, &q.CreatedAt, &q.ModifiedAt)
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*entity.Question, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE id = $1
	`, id)

	return scanQuestion(row)
}

func (r *QuestionRepository) List(ctx context.Context, limit, offset int) ([]*entity.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]*entity.Question, 0, limit)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *QuestionRepository) UpdateTitle(ctx context.Context, id int64, title string) (*entity.Question, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE questions
		SET title = $2, modified_at = now()
		WHERE id = $1
		RETURNING `+questionColumns+`
	`, id, title)

	return scanQuestion(row)
}

func (r *QuestionRepository) UpdateDescription(ctx context.Context, id int64, description string) (*entity.Question, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE questions
		SET description = $2, modified_at = now()
		WHERE id = $1
		RETURNING `+questionColumns+`
	`, id, description)

	return scanQuestion(row)
}

// IncrementViews applies the +1 in a single statement so concurrent views are
// never lost.
func (r *QuestionRepository) IncrementViews(ctx context.Context, id int64) (int64, error) {
	var views int64
	err := r.pool.QueryRow(ctx, `
		UPDATE questions
		SET views = views + 1, modified_at = now()
		WHERE id = $1
		RETURNING views
	`, id).Scan(&views)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	return views, err
}

func (r *QuestionRepository) AddRating(ctx context.Context, id int64, delta int64) (int64, error) {
	var rating int64
	err := r.pool.QueryRow(ctx, `
		UPDATE questions
		SET rating = rating + $2, modified_at = now()
		WHERE id = $1
		RETURNING rating
	`, id, delta).Scan(&rating)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	return rating, err
}

func (r *QuestionRepository) SetCorrectAnswer(ctx context.Context, id, answerID int64) (*entity.Question, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE questions
		SET correct_answer = $2, modified_at = now()
		WHERE id = $1
		RETURNING `+questionColumns+`
	`, id, answerID)

	return scanQuestion(row)
}

func (r *QuestionRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM questions WHERE user_id = $1
	`, userID).Scan(&count)
	return count, err
}

func (r *QuestionRepository) Remove(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.QuestionRepository = (*QuestionRepository)(nil)

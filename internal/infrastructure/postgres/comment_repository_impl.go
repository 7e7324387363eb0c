package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qaboard/qa-backend/internal/domain/entity"
	"github.com/qaboard/qa-backend/internal/domain/repository"
)

const commentColumns = `id, user_id, question_id, answer_id, description, rating, created_at, modified_at`

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	c := &entity.Comment{}
	if err := row.Scan(&c.ID, &c.UserID, &c.QuestionID, &c.AnswerID, &c.Description,
		&c.Rating, &c.CreatedAt, &c.ModifiedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (user_id, question_id, answer_id, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, rating, created_at, modified_at
	`, c.UserID, c.QuestionID, c.AnswerID, c.Description)

	return row.Scan(&c.ID, &c.Rating, &c.CreatedAt, &c.ModifiedAt)
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*entity.Comment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE id = $1
	`, id)

	return scanComment(row)
}

func (r *CommentRepository) ListByQuestionID(ctx context.Context, questionID int64, limit, offset int) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE question_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, questionID, limit, offset*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectComments(rows, limit)
}

func (r *CommentRepository) ListByAnswerID(ctx context.Context, answerID int64, limit, offset int) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE answer_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, answerID, limit, offset*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectComments(rows, limit)
}

// ListAllByAnswerID returns every comment on an answer; the removal cascade
// relies on it being unpaginated.
func (r *CommentRepository) ListAllByAnswerID(ctx context.Context, answerID int64) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE answer_id = $1
		ORDER BY id
	`, answerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectComments(rows, 0)
}

func collectComments(rows pgx.Rows, capHint int) ([]*entity.Comment, error) {
	comments := make([]*entity.Comment, 0, capHint)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) UpdateDescription(ctx context.Context, id int64, description string) (*entity.Comment, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE comments
		SET description = $2, modified_at = now()
		WHERE id = $1
		RETURNING `+commentColumns+`
	`, id, description)

	return scanComment(row)
}

func (r *CommentRepository) AddRating(ctx context.Context, id int64, delta int64) (int64, error) {
	var rating int64
	err := r.pool.QueryRow(ctx, `
		UPDATE comments
		SET rating = rating + $2, modified_at = now()
		WHERE id = $1
		RETURNING rating
	`, id, delta).Scan(&rating)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	return rating, err
}

func (r *CommentRepository) Remove(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)

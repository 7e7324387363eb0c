package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qaboard/qa-backend/internal/domain/entity"
	"github.com/qaboard/qa-backend/internal/domain/repository"
)

const profileColumns = `id, user_id, first_name, last_name, description, image, reputation, created_at, modified_at`

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	p := &entity.Profile{}
	if err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Description,
		&p.Image, &p.Reputation, &p.CreatedAt, &p.ModifiedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, first_name, last_name)
		VALUES ($1, $2, $3)
		RETURNING id, reputation, created_at, modified_at
	`, p.UserID, p.FirstName, p.LastName)

	return row.Scan(&p.ID, &p.Reputation, &p.CreatedAt, &p.ModifiedAt)
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id = $1
	`, id)

	return scanProfile(row)
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1
	`, userID)

	return scanProfile(row)
}

func (r *ProfileRepository) List(ctx context.Context, limit, offset int) ([]*entity.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*entity.Profile, 0, limit)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) UpdateFirstName(ctx context.Context, id int64, firstName string) (*entity.Profile, error) {
	return r.updateColumn(ctx, id, "first_name", firstName)
}

func (r *ProfileRepository) UpdateLastName(ctx context.Context, id int64, lastName string) (*entity.Profile, error) {
	return r.updateColumn(ctx, id, "last_name", lastName)
}

func (r *ProfileRepository) UpdateDescription(ctx context.Context, id int64, description string) (*entity.Profile, error) {
	return r.updateColumn(ctx, id, "description", description)
}

func (r *ProfileRepository) UpdateImage(ctx context.Context, id int64, image []byte) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE profiles
		SET image = $2, modified_at = now()
		WHERE id = $1
		RETURNING `+profileColumns+`
	`, id, image)

	return scanProfile(row)
}

func (r *ProfileRepository) updateColumn(ctx context.Context, id int64, column, value string) (*entity.Profile, error) {
	// column comes from the fixed set above, never from input
	row := r.pool.QueryRow(ctx, `
		UPDATE profiles
		SET `+column+` = $2, modified_at = now()
		WHERE id = $1
		RETURNING `+profileColumns+`
	`, id, value)

	return scanProfile(row)
}

func (r *ProfileRepository) AddReputation(ctx context.Context, id int64, delta int64) (int64, error) {
	var reputation int64
	err := r.pool.QueryRow(ctx, `
		UPDATE profiles
		SET reputation = reputation + $2, modified_at = now()
		WHERE id = $1
		RETURNING reputation
	`, id, delta).Scan(&reputation)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	return reputation, err
}

func (r *ProfileRepository) Remove(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

package repository

import (
	"context"

	"github.com/qaboard/qa-backend/internal/domain/entity"
)

// ProfileRepository defines the store operations for the profile aggregate.
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	GetByID(ctx context.Context, id int64) (*entity.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Profile, error)
	UpdateFirstName(ctx context.Context, id int64, firstName string) (*entity.Profile, error)
	UpdateLastName(ctx context.Context, id int64, lastName string) (*entity.Profile, error)
	UpdateDescription(ctx context.Context, id int64, description string) (*entity.Profile, error)
	UpdateImage(ctx context.Context, id int64, image []byte) (*entity.Profile, error)
	AddReputation(ctx context.Context, id int64, delta int64) (int64, error)
	Remove(ctx context.Context, id int64) error
}

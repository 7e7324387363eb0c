package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/qaboard/qa-backend/internal/domain/entity"
	repo "github.com/qaboard/qa-backend/internal/domain/repository"
)

// ProfileService owns the user profile lifecycle, one profile per user.
// Unlike ratings, the reputation delta is unrestricted; the reputation worker
// applies the per-event amounts.
type ProfileService struct {
	Profiles repo.ProfileRepository
	Logger   *logrus.Logger
}

func NewProfileService(profiles repo.ProfileRepository, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Profiles: profiles, Logger: logger}
}

func (s *ProfileService) FindProfile(ctx context.Context, id int64) (*entity.Profile, error) {
	p, err := s.Profiles.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}
	return p, nil
}

func (s *ProfileService) FindProfileByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	if err := requireNonEmpty("userID", userID); err != nil {
		return nil, err
	}
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}
	return p, nil
}

func (s *ProfileService) ListProfiles(ctx context.Context, limit, offset int) ([]*entity.Profile, error) {
	return s.Profiles.List(ctx, limit, offset)
}

// CreateProfile requires userID and firstName; lastName may be filled in
// later.
func (s *ProfileService) CreateProfile(ctx context.Context, userID, firstName, lastName string) (*entity.Profile, error) {
	if err := requireNonEmpty("userID", userID); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("firstName", firstName); err != nil {
		return nil, err
	}

	p := &entity.Profile{UserID: userID, FirstName: firstName, LastName: lastName}
	if err := s.Profiles.Create(ctx, p); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"profile_id": p.ID, "user_id": userID}).Info("profile created")
	}
	return p, nil
}

func (s *ProfileService) UpdateFirstName(ctx context.Context, id int64, firstName string) (*entity.Profile, error) {
	if err := requireNonEmpty("firstName", firstName); err != nil {
		return nil, err
	}
	p, err := s.Profiles.UpdateFirstName(ctx, id, firstName)
	if err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}
	return p, nil
}

func (s *ProfileService) UpdateLastName(ctx context.Context, id int64, lastName string) (*entity.Profile, error) {
	if err := requireNonEmpty("lastName", lastName); err != nil {
		return nil, err
	}
	p, err := s.Profiles.UpdateLastName(ctx, id, lastName)
	if err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}
	return p, nil
}

func (s *ProfileService) UpdateDescription(ctx context.Context, id int64, description string) (*entity.Profile, error) {
	if err := requireNonEmpty("description", description); err != nil {
		return nil, err
	}
	p, err := s.Profiles.UpdateDescription(ctx, id, description)
	if err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}
	return p, nil
}

func (s *ProfileService) UpdateImage(ctx context.Context, id int64, image []byte) (*entity.Profile, error) {
	p, err := s.Profiles.UpdateImage(ctx, id, image)
	if err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}
	return p, nil
}

// UpdateReputation applies an arbitrary signed delta atomically.
func (s *ProfileService) UpdateReputation(ctx context.Context, id int64, delta int64) (int64, error) {
	reputation, err := s.Profiles.AddReputation(ctx, id, delta)
	if err != nil {
		return 0, asNotFound(err, ErrProfileNotFound)
	}
	return reputation, nil
}

func (s *ProfileService) RemoveProfile(ctx context.Context, id int64) error {
	if err := s.Profiles.Remove(ctx, id); err != nil {
		return asNotFound(err, ErrProfileNotFound)
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"

	"plantGame/internal/domain"
)

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrUserNotFound, id)
	}
	return u, nil
}

// CreateUser stores u as given and returns it with the assigned id. An
// absent btc starts the user at zero.
func (s *Service) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: btc must not be negative", domain.ErrValidation)
	}
	id, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return &u, nil
}

// UpdateUser rewrites the profile fields. The stored balance is kept
// whatever btc the request carries.
func (s *Service) UpdateUser(ctx context.Context, id int, u domain.User) error {
	return s.repo.UpdateUser(ctx, id, u)
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	return s.repo.DeleteUser(ctx, id)
}

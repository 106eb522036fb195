package usecase

import (
	"context"
	"fmt"

	"plantGame/internal/domain"
)

func (s *Service) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	return s.repo.ListPlants(ctx)
}

func (s *Service) GetPlant(ctx context.Context, id int) (*domain.Plant, error) {
	p, err := s.repo.GetPlantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("plant %w: id=%d", domain.ErrNotFound, id)
	}
	return p, nil
}

func (s *Service) CreatePlant(ctx context.Context, p domain.Plant) (*domain.Plant, error) {
	id, err := s.repo.CreatePlant(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (s *Service) UpdatePlant(ctx context.Context, id int, p domain.Plant) error {
	return s.repo.UpdatePlant(ctx, id, p)
}

func (s *Service) DeletePlant(ctx context.Context, id int) error {
	return s.repo.DeletePlant(ctx, id)
}

package catalog

import (
	"context"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*Experience, error)
	List(ctx context.Context, filter Filter) ([]*Experience, int, error)
	Slots(ctx context.Context, experienceID string) ([]Slot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*Experience, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Experience, int, error) {
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Slots(ctx context.Context, experienceID string) ([]Slot, error) {
	return s.repo.Slots(ctx, experienceID)
}

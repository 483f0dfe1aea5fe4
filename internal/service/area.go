package service

import (
	"context"

	"github.com/deppfellow/inventory-api/internal/model"
)

type AreaService struct {
	repo  AreaRepository
	cache *lookupCache
}

func NewAreaService(repo AreaRepository, cache *lookupCache) *AreaService {
	return &AreaService{repo: repo, cache: cache}
}

// GetByID returns ErrAreaNotFound when no area has id.
func (s *AreaService) GetByID(ctx context.Context, id int) (*model.Area, error) {
	area, err := cachedGet(ctx, s.cache, id, s.repo.GetByID)
	if err != nil {
		return nil, mapNotFound(err, ErrAreaNotFound)
	}
	return area, nil
}

func (s *AreaService) List(ctx context.Context) ([]model.Area, error) {
	return s.repo.List(ctx)
}

func (s *AreaService) Create(ctx context.Context, payload *model.CreateAreaPayload) (*model.Area, error) {
	area, err := s.repo.Create(ctx, payload.Name)
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, area.ID, area)
	return area, nil
}

package service

import (
	"context"

	"github.com/deppfellow/inventory-api/internal/model"
)

type CategoryService struct {
	repo  CategoryRepository
	cache *lookupCache
}

func NewCategoryService(repo CategoryRepository, cache *lookupCache) *CategoryService {
	return &CategoryService{repo: repo, cache: cache}
}

// GetByID returns ErrCategoryNotFound when no category has id.
func (s *CategoryService) GetByID(ctx context.Context, id int) (*model.Category, error) {
	category, err := cachedGet(ctx, s.cache, id, s.repo.GetByID)
	if err != nil {
		return nil, mapNotFound(err, ErrCategoryNotFound)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, payload *model.CreateCategoryPayload) (*model.Category, error) {
	category, err := s.repo.Create(ctx, payload.Name)
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, category.ID, category)
	return category, nil
}

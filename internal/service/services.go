// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// payloads from handlers, applies the inventory rules and calls repositories.
package service

import (
	"github.com/deppfellow/inventory-api/internal/lib/job"
	"github.com/deppfellow/inventory-api/internal/repository"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/redis/go-redis/v9"
)

type Services struct {
	Auth     *AuthService
	Job      *job.JobService
	Category *CategoryService
	Area     *AreaService
	Product  *ProductService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	inventory := s.Config.Inventory

	var cache redis.Cmdable
	if s.Redis != nil {
		cache = s.Redis
	}

	var alerts StockAlertEnqueuer
	if s.Job != nil {
		alerts = s.Job
	}

	return &Services{
		Auth: NewAuthService(s),
		Job:  s.Job,
		Category: NewCategoryService(
			repos.Category,
			newLookupCache(cache, "category", inventory.LookupCacheTTL, s.Logger),
		),
		Area: NewAreaService(
			repos.Area,
			newLookupCache(cache, "area", inventory.LookupCacheTTL, s.Logger),
		),
		Product: NewProductService(
			repos.Product,
			alerts,
			inventory,
			s.Config.Integration.StockAlertEmail,
			s.Logger,
		),
	}, nil
}

package service

import (
	"context"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/deppfellow/inventory-api/internal/lib/job"
	"github.com/deppfellow/inventory-api/internal/metrics"
	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/rs/zerolog"
)

type ProductService struct {
	repo   ProductRepository
	alerts StockAlertEnqueuer
	cfg    *config.InventoryConfig
	logger *zerolog.Logger

	// alertRecipient receives low stock emails; empty disables alerts.
	alertRecipient string
}

func NewProductService(
	repo ProductRepository,
	alerts StockAlertEnqueuer,
	cfg *config.InventoryConfig,
	alertRecipient string,
	logger *zerolog.Logger,
) *ProductService {
	return &ProductService{
		repo:           repo,
		alerts:         alerts,
		cfg:            cfg,
		logger:         logger,
		alertRecipient: alertRecipient,
	}
}

// GetByID returns ErrProductNotFound when no product has id.
func (s *ProductService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrProductNotFound)
	}
	return product, nil
}

// GetByNameAndArea returns ErrProductNotFound when the area has no product
// with that name.
func (s *ProductService) GetByNameAndArea(ctx context.Context, name string, areaID int) (*model.Product, error) {
	product, err := s.repo.GetByNameAndArea(ctx, name, areaID)
	if err != nil {
		return nil, mapNotFound(err, ErrProductNotFound)
	}
	return product, nil
}

// List returns one page of products. Page defaults to 1 and limit to the
// configured page size.
func (s *ProductService) List(ctx context.Context, q *model.ListProductsQuery) (*model.PaginatedResponse[model.Product], error) {
	query := *q
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = s.cfg.DefaultPageSize
	}

	products, total, err := s.repo.List(ctx, &query)
	if err != nil {
		return nil, err
	}

	resp := model.NewPaginatedResponse(products, query.Page, query.Limit, total)
	return &resp, nil
}

func (s *ProductService) Create(ctx context.Context, payload *model.CreateProductPayload) (*model.Product, error) {
	product, err := s.repo.Create(ctx, payload.ToProduct())
	if err != nil {
		return nil, err
	}

	s.checkStock(ctx, product)
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, payload *model.UpdateProductPayload) (*model.Product, error) {
	product, err := s.repo.Update(ctx, payload.ToProduct())
	if err != nil {
		return nil, mapNotFound(err, ErrProductNotFound)
	}

	s.checkStock(ctx, product)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	return mapNotFound(s.repo.Delete(ctx, id), ErrProductNotFound)
}

// checkStock enqueues a low stock alert when the product is at or below the
// threshold. Enqueue failures are logged; the write already succeeded.
func (s *ProductService) checkStock(ctx context.Context, p *model.Product) {
	if s.alerts == nil || s.alertRecipient == "" || p.Quantity > s.cfg.LowStockThreshold {
		return
	}

	err := s.alerts.EnqueueLowStockAlert(ctx, job.LowStockPayload{
		To:          s.alertRecipient,
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    p.Quantity,
		Threshold:   s.cfg.LowStockThreshold,
		AreaID:      p.AreaID,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", p.ID).Msg("failed to enqueue low stock alert")
		return
	}

	metrics.RecordStockAlert()
}

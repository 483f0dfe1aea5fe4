package service

import (
	"context"

	"github.com/deppfellow/inventory-api/internal/lib/job"
	"github.com/deppfellow/inventory-api/internal/model"
)

// The repository package satisfies these; services only see the methods
// they call.

type CategoryRepository interface {
	GetByID(ctx context.Context, id int) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
}

type AreaRepository interface {
	GetByID(ctx context.Context, id int) (*model.Area, error)
	List(ctx context.Context) ([]model.Area, error)
	Create(ctx context.Context, name string) (*model.Area, error)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int) (*model.Product, error)
	GetByNameAndArea(ctx context.Context, name string, areaID int) (*model.Product, error)
	List(ctx context.Context, q *model.ListProductsQuery) ([]model.Product, int, error)
	Create(ctx context.Context, p model.Product) (*model.Product, error)
	Update(ctx context.Context, p model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int) error
}

// StockAlertEnqueuer schedules low stock alerts; *job.JobService implements it.
type StockAlertEnqueuer interface {
	EnqueueLowStockAlert(ctx context.Context, payload job.LowStockPayload) error
}

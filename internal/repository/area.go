package repository

import (
	"context"

	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/deppfellow/inventory-api/internal/server"
)

const areasTable = "areas"

var areaColumns = []string{"id", "name", "created_at", "updated_at"}

type AreaRepository struct {
	server *server.Server
}

func NewAreaRepository(s *server.Server) *AreaRepository {
	return &AreaRepository{server: s}
}

func (r *AreaRepository) GetByID(ctx context.Context, id int) (*model.Area, error) {
	return queryOne[model.Area](ctx, r.server.DB.Pool, areasTable, buildGetByIDQuery(areasTable, areaColumns, id))
}

func (r *AreaRepository) List(ctx context.Context) ([]model.Area, error) {
	return queryAll[model.Area](ctx, r.server.DB.Pool, areasTable, buildListNamedQuery(areasTable, areaColumns))
}

func (r *AreaRepository) Create(ctx context.Context, name string) (*model.Area, error) {
	return queryOne[model.Area](ctx, r.server.DB.Pool, areasTable, buildInsertNamedQuery(areasTable, areaColumns, name))
}

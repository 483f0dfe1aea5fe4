package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/deppfellow/inventory-api/internal/server"
)

const categoriesTable = "categories"

var categoryColumns = []string{"id", "name", "created_at", "updated_at"}

type CategoryRepository struct {
	server *server.Server
}

func NewCategoryRepository(s *server.Server) *CategoryRepository {
	return &CategoryRepository{server: s}
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*model.Category, error) {
	return queryOne[model.Category](ctx, r.server.DB.Pool, categoriesTable, buildGetByIDQuery(categoriesTable, categoryColumns, id))
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	return queryAll[model.Category](ctx, r.server.DB.Pool, categoriesTable, buildListNamedQuery(categoriesTable, categoryColumns))
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	return queryOne[model.Category](ctx, r.server.DB.Pool, categoriesTable, buildInsertNamedQuery(categoriesTable, categoryColumns, name))
}

// Categories and areas share the same shape, so their statements are built
// by the helpers below.

func buildGetByIDQuery(table string, columns []string, id int) sq.SelectBuilder {
	return psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})
}

func buildListNamedQuery(table string, columns []string) sq.SelectBuilder {
	return psql.Select(columns...).
		From(table).
		OrderBy("name ASC")
}

func buildInsertNamedQuery(table string, columns []string, name string) sq.InsertBuilder {
	return psql.Insert(table).
		Columns("name").
		Values(name).
		Suffix("RETURNING " + joinColumns(columns))
}

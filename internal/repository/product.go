package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/deppfellow/inventory-api/internal/server"
)

const productsTable = "products"

var productColumns = []string{
	"id",
	"name",
	"price",
	"quantity",
	"category_id",
	"area_id",
	"created_at",
	"updated_at",
}

type ProductRepository struct {
	server *server.Server
}

func NewProductRepository(s *server.Server) *ProductRepository {
	return &ProductRepository{server: s}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	return queryOne[model.Product](ctx, r.server.DB.Pool, productsTable, buildGetByIDQuery(productsTable, productColumns, id))
}

// GetByNameAndArea looks a product up by its unique (name, area_id) pair.
func (r *ProductRepository) GetByNameAndArea(ctx context.Context, name string, areaID int) (*model.Product, error) {
	return queryOne[model.Product](ctx, r.server.DB.Pool, productsTable, buildGetProductByNameAndAreaQuery(name, areaID))
}

// List returns one page of products matching q plus the total number of
// matching rows.
func (r *ProductRepository) List(ctx context.Context, q *model.ListProductsQuery) ([]model.Product, int, error) {
	total, err := count(ctx, r.server.DB.Pool, productsTable, buildCountProductsQuery(q))
	if err != nil {
		return nil, 0, err
	}

	products, err := queryAll[model.Product](ctx, r.server.DB.Pool, productsTable, buildListProductsQuery(q))
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepository) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	return queryOne[model.Product](ctx, r.server.DB.Pool, productsTable, buildInsertProductQuery(p))
}

func (r *ProductRepository) Update(ctx context.Context, p model.Product) (*model.Product, error) {
	return queryOne[model.Product](ctx, r.server.DB.Pool, productsTable, buildUpdateProductQuery(p))
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	query, args, err := buildDeleteProductQuery(id).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s delete query: %w", productsTable, err)
	}

	tag, err := r.server.DB.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", productsTable, err)
	}

	if tag.RowsAffected() == 0 {
		return notFound(productsTable)
	}

	return nil
}

func buildGetProductByNameAndAreaQuery(name string, areaID int) sq.SelectBuilder {
	return psql.Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"name": name, "area_id": areaID})
}

// productFilters turns the list query into a WHERE clause. Zero ids and an
// empty search mean "no filter".
func productFilters(q *model.ListProductsQuery) sq.And {
	filters := sq.And{}

	if q.CategoryID > 0 {
		filters = append(filters, sq.Eq{"category_id": q.CategoryID})
	}
	if q.AreaID > 0 {
		filters = append(filters, sq.Eq{"area_id": q.AreaID})
	}
	if q.Search != "" {
		filters = append(filters, sq.ILike{"name": "%" + q.Search + "%"})
	}

	return filters
}

func buildCountProductsQuery(q *model.ListProductsQuery) sq.SelectBuilder {
	return psql.Select("COUNT(*)").
		From(productsTable).
		Where(productFilters(q))
}

func buildListProductsQuery(q *model.ListProductsQuery) sq.SelectBuilder {
	b := psql.Select(productColumns...).
		From(productsTable).
		Where(productFilters(q)).
		OrderBy("id ASC")

	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit)).Offset(uint64(q.Offset()))
	}

	return b
}

func buildInsertProductQuery(p model.Product) sq.InsertBuilder {
	return psql.Insert(productsTable).
		Columns("name", "price", "quantity", "category_id", "area_id").
		Values(p.Name, p.Price, p.Quantity, p.CategoryID, p.AreaID).
		Suffix("RETURNING " + joinColumns(productColumns))
}

func buildUpdateProductQuery(p model.Product) sq.UpdateBuilder {
	return psql.Update(productsTable).
		SetMap(map[string]any{
			"name":        p.Name,
			"price":       p.Price,
			"quantity":    p.Quantity,
			"category_id": p.CategoryID,
			"area_id":     p.AreaID,
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + joinColumns(productColumns))
}

func buildDeleteProductQuery(id int) sq.DeleteBuilder {
	return psql.Delete(productsTable).Where(sq.Eq{"id": id})
}

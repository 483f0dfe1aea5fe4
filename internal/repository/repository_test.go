package repository

import (
	"errors"
	"testing"

	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundKeepsTableName(t *testing.T) {
	err := notFound(productsTable)

	assert.True(t, errors.Is(err, pgx.ErrNoRows))
	assert.Contains(t, err.Error(), "table:products:")
}

func TestBuildGetByIDQuery(t *testing.T) {
	query, args, err := buildGetByIDQuery(categoriesTable, categoryColumns, 7).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, created_at, updated_at FROM categories WHERE id = $1", query)
	assert.Equal(t, []any{7}, args)
}

func TestBuildInsertNamedQuery(t *testing.T) {
	query, args, err := buildInsertNamedQuery(areasTable, areaColumns, "Cold room").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO areas (name) VALUES ($1) RETURNING id, name, created_at, updated_at", query)
	assert.Equal(t, []any{"Cold room"}, args)
}

func TestBuildGetProductByNameAndAreaQuery(t *testing.T) {
	query, args, err := buildGetProductByNameAndAreaQuery("Bolt", 3).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM products WHERE area_id = $1 AND name = $2")
	assert.Equal(t, []any{3, "Bolt"}, args)
}

func TestBuildListProductsQuery(t *testing.T) {
	tests := []struct {
		name      string
		q         model.ListProductsQuery
		wantWhere string
		wantArgs  []any
		wantTail  string
	}{
		{
			name:      "no filters",
			q:         model.ListProductsQuery{Page: 1, Limit: 20},
			wantWhere: "WHERE (1=1)",
			wantArgs:  []any{},
			wantTail:  "ORDER BY id ASC LIMIT 20 OFFSET 0",
		},
		{
			name:      "category and area",
			q:         model.ListProductsQuery{CategoryID: 2, AreaID: 5, Page: 3, Limit: 10},
			wantWhere: "WHERE (category_id = $1 AND area_id = $2)",
			wantArgs:  []any{2, 5},
			wantTail:  "ORDER BY id ASC LIMIT 10 OFFSET 20",
		},
		{
			name:      "search only",
			q:         model.ListProductsQuery{Search: "bolt", Page: 1, Limit: 5},
			wantWhere: "WHERE (name ILIKE $1)",
			wantArgs:  []any{"%bolt%"},
			wantTail:  "LIMIT 5 OFFSET 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListProductsQuery(&tt.q).ToSql()
			require.NoError(t, err)

			assert.Contains(t, query, "FROM products "+tt.wantWhere)
			assert.Contains(t, query, tt.wantTail)
			assert.ElementsMatch(t, tt.wantArgs, args)

			countQuery, countArgs, err := buildCountProductsQuery(&tt.q).ToSql()
			require.NoError(t, err)

			assert.Equal(t, "SELECT COUNT(*) FROM products "+tt.wantWhere, countQuery)
			assert.ElementsMatch(t, tt.wantArgs, countArgs)
		})
	}
}

func TestBuildInsertProductQuery(t *testing.T) {
	p := model.Product{Name: "Bolt", Price: 1.5, Quantity: 10, CategoryID: 1, AreaID: 2}

	query, args, err := buildInsertProductQuery(p).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO products (name,price,quantity,category_id,area_id) VALUES ($1,$2,$3,$4,$5) "+
			"RETURNING id, name, price, quantity, category_id, area_id, created_at, updated_at",
		query)
	assert.Equal(t, []any{"Bolt", 1.5, 10, 1, 2}, args)
}

func TestBuildUpdateProductQuery(t *testing.T) {
	p := model.Product{Name: "Bolt", Price: 2, Quantity: 4, CategoryID: 1, AreaID: 2}
	p.ID = 9

	query, args, err := buildUpdateProductQuery(p).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE products SET area_id = $1, category_id = $2, name = $3, price = $4, quantity = $5 WHERE id = $6 "+
			"RETURNING id, name, price, quantity, category_id, area_id, created_at, updated_at",
		query)
	assert.Equal(t, []any{2, 1, "Bolt", 2.0, 4, 9}, args)
}

func TestBuildDeleteProductQuery(t *testing.T) {
	query, args, err := buildDeleteProductQuery(4).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM products WHERE id = $1", query)
	assert.Equal(t, []any{4}, args)
}

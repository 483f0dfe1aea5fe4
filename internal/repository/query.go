package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql builds statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// notFound marks err as a missing row of table.
func notFound(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}

// queryOne runs b and scans exactly one row into T.
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, table string, b sq.Sqlizer) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", table, err)
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(table)
		}
		return nil, fmt.Errorf("failed to collect row from %s: %w", table, err)
	}

	return &item, nil
}

// queryAll runs b and scans every row into T. An empty result is an empty
// slice, never nil.
func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, table string, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", table, err)
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from %s: %w", table, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

// count runs a SELECT COUNT(*) builder.
func count(ctx context.Context, pool *pgxpool.Pool, table string, b sq.Sqlizer) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build %s count query: %w", table, err)
	}

	var total int
	if err := pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	return total, nil
}

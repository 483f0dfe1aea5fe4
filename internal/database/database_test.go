package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTracer struct {
	started, ended int
}

func (r *recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	r.started++
	return ctx
}

func (r *recordingTracer) TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData) {
	r.ended++
}

func TestMultiTracerCallsEveryTracer(t *testing.T) {
	a, b := &recordingTracer{}, &recordingTracer{}
	mt := &multiTracer{tracers: []any{a, "not a tracer", b}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Equal(t, 1, a.started)
	assert.Equal(t, 1, a.ended)
	assert.Equal(t, 1, b.started)
	assert.Equal(t, 1, b.ended)
}

func TestMetricsTracerWarnsOnSlowQuery(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	tracer := newMetricsTracer(&logger, 50*time.Millisecond)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tracer.now = func() time.Time { return clock }

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT * FROM products"})
	clock = clock.Add(80 * time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Contains(t, buf.String(), "slow query")
	assert.Contains(t, buf.String(), `"operation":"select"`)
}

func TestMetricsTracerQuietOnFastQuery(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	tracer := newMetricsTracer(&logger, 50*time.Millisecond)

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Empty(t, buf.String())
}

func TestSchemaMigratorLoadsEmbeddedMigrations(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	m, err := newSchemaMigrator(context.Background(), nil, &logger)
	require.NoError(t, err)
	require.NotEmpty(t, m.Migrations)
	assert.Equal(t, "001_setup.sql", m.Migrations[0].Name)
	assert.Contains(t, m.Migrations[0].UpSQL, "CREATE TABLE")

	require.NotNil(t, m.OnStart)
	m.OnStart(1, "001_setup.sql", "up", "")
	assert.Contains(t, buf.String(), `"migration":"001_setup.sql"`)
	assert.Contains(t, buf.String(), `"sequence":1`)
	assert.Contains(t, buf.String(), `"direction":"up"`)
}

func TestMigrationErrorNamesFailingMigration(t *testing.T) {
	err := migrationError(tern.MigrationPgError{
		MigrationName: "001_setup.sql",
		PgError:       &pgconn.PgError{Code: "42P07", Message: "relation already exists"},
	})
	assert.ErrorContains(t, err, "migration 001_setup.sql failed (42P07)")

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))

	plain := errors.New("conn closed")
	assert.ErrorIs(t, migrationError(plain), plain)
}

package database

import (
	"context"
	"time"

	"github.com/deppfellow/inventory-api/internal/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type queryStartKey struct{}

type queryStart struct {
	sql   string
	start time.Time
}

// metricsTracer records every query into Prometheus and warns about queries
// slower than slowThreshold. A zero threshold disables the warning.
type metricsTracer struct {
	logger        *zerolog.Logger
	slowThreshold time.Duration
	now           func() time.Time
}

func newMetricsTracer(logger *zerolog.Logger, slowThreshold time.Duration) *metricsTracer {
	return &metricsTracer{
		logger:        logger,
		slowThreshold: slowThreshold,
		now:           time.Now,
	}
}

func (t *metricsTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, start: t.now()})
}

func (t *metricsTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	qs, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}

	duration := t.now().Sub(qs.start)
	slow := t.slowThreshold > 0 && duration >= t.slowThreshold

	metrics.RecordDBQuery(qs.sql, duration, data.Err, slow)

	if slow {
		t.logger.Warn().
			Str("operation", metrics.Operation(qs.sql)).
			Dur("duration", duration).
			Dur("threshold", t.slowThreshold).
			Msg("slow query")
	}
}

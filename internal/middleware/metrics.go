package middleware

import (
	"time"

	"github.com/deppfellow/inventory-api/internal/metrics"
	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latencies by route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.RecordHTTPRequest(c.Request().Method, route, StatusOf(c, err), time.Since(start))

			return err
		}
	}
}

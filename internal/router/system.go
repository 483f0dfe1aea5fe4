package router

import (
	"github.com/deppfellow/inventory-api/internal/handler"
	"github.com/deppfellow/inventory-api/internal/metrics"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the business API:
// health, Prometheus metrics and the OpenAPI docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, s *server.Server) {
	r.GET("/status", h.Health.CheckHealth)

	if obs := s.Config.Observability; obs != nil && obs.Metrics.Enabled {
		r.GET(obs.MetricsPath(), echo.WrapHandler(metrics.Handler()))
	}

	// openapi.json and openapi.html live here.
	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}

package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/inventory-api/internal/middleware"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/labstack/echo/v4"
)

const defaultHealthTimeout = 5 * time.Second

// HealthHandler reports whether the service and its dependencies are up.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth pings the configured dependencies.
//
// A failing database makes the service unhealthy (503). Redis only backs the
// lookup cache and background jobs, so a failing Redis reports "degraded"
// with a 200.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]checkResult{},
	}

	checks, timeout := h.checkConfig()

	if slices.Contains(checks, "database") && h.server.DB != nil {
		result := h.runCheck(c.Request().Context(), "database", timeout, func(ctx context.Context) error {
			return h.server.DB.Pool.Ping(ctx)
		})
		response.Checks["database"] = result
		if result.Error != "" {
			response.Status = "unhealthy"
		}
	}

	if slices.Contains(checks, "redis") && h.server.Redis != nil {
		result := h.runCheck(c.Request().Context(), "redis", timeout, func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
		response.Checks["redis"] = result
		if result.Error != "" && response.Status == "healthy" {
			response.Status = "degraded"
		}
	}

	if response.Status == "unhealthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Str("status", response.Status).
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) checkConfig() ([]string, time.Duration) {
	obs := h.server.Config.Observability
	if obs == nil {
		return []string{"database", "redis"}, defaultHealthTimeout
	}
	if !obs.HealthChecks.Enabled {
		return nil, 0
	}

	timeout := obs.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}
	return obs.HealthChecks.Checks, timeout
}

func (h *HealthHandler) runCheck(ctx context.Context, name string, timeout time.Duration, ping func(context.Context) error) checkResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err == nil {
		h.server.Logger.Debug().Str("check", name).Dur("response_time", elapsed).Msg("health check passed")
		return checkResult{Status: "healthy", ResponseTime: elapsed.String()}
	}

	h.server.Logger.Error().Err(err).Str("check", name).Dur("response_time", elapsed).Msg("health check failed")

	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}

	return checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
}

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/deppfellow/inventory-api/internal/handler"
	"github.com/deppfellow/inventory-api/internal/middleware"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/deppfellow/inventory-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	inventory := config.DefaultInventoryConfig()
	inventory.RateLimit = 0

	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "local"},
			Server: config.ServerConfig{
				Port:               "8080",
				CORSAllowedOrigins: []string{"http://localhost:3000"},
			},
			Inventory:     inventory,
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	// Only routes rejected before reaching a service are exercised here.
	services := &service.Services{}

	return NewRouter(s, handler.NewHandlers(s, services), services)
}

func do(r *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "inventory_http_requests_total")
}

func TestUnknownRoute(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/api/v1/nothing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestProductRoutesRejectInvalidID(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/api/v1/products/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), middleware.MsgInvalidID)
}

func TestWriteRoutesRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/v1/categories"},
		{http.MethodPost, "/api/v1/areas"},
		{http.MethodPost, "/api/v1/products"},
		{http.MethodPut, "/api/v1/products/1"},
		{http.MethodDelete, "/api/v1/products/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(r, tt.method, tt.target, `{"name":"Bolt"}`)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

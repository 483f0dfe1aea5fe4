package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/deppfellow/inventory-api/internal/errs"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestRequestIDReplacesUnsafeHeader(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, RequestIDFromContext(c.Request().Context()))
	})

	tests := []struct {
		name   string
		header string
	}{
		{"newline", "abc\ninjected"},
		{"spaces", "abc def"},
		{"too long", strings.Repeat("a", 65)},
		{"json", `{"x":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tt.header)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			assert.NotEqual(t, tt.header, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
			assert.Equal(t, got, rec.Body.String())
		})
	}
}

func TestStatusOf(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, http.StatusNotFound, StatusOf(c, errs.NewNotFoundError("x", false, nil)))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusOf(c, echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(c, errors.New("boom")))
}

func TestGlobalErrorHandlerRouteNotFound(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = (&GlobalMiddlewares{}).GlobalErrorHandler

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestRateLimit(t *testing.T) {
	logger := zerolog.Nop()
	inventory := config.DefaultInventoryConfig()
	inventory.RateLimit = 1
	inventory.RateLimitBurst = 1

	s := &server.Server{
		Config: &config.Config{Inventory: inventory},
		Logger: &logger,
	}

	e := echo.New()
	e.HTTPErrorHandler = (&GlobalMiddlewares{}).GlobalErrorHandler
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewRateLimitMiddleware(s).Limit())

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	inventory := config.DefaultInventoryConfig()
	inventory.RateLimit = 0

	s := &server.Server{Config: &config.Config{Inventory: inventory}}

	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NoError(t, NewRateLimitMiddleware(s).Limit()(next)(c))
	assert.True(t, called)
}

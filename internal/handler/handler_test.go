package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/deppfellow/inventory-api/internal/errs"
	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleWritesJSON(t *testing.T) {
	h := Handler{}
	create := func(c echo.Context, p *model.CreateCategoryPayload) (*model.Category, error) {
		return &model.Category{Base: model.Base{ID: 1}, Name: p.Name}, nil
	}

	c, rec := newTestContext(http.MethodPost, "/", `{"name":"Tools"}`)
	require.NoError(t, Handle(h, create, http.StatusCreated, &model.CreateCategoryPayload{})(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Tools", got.Name)
}

func TestHandleValidationFailure(t *testing.T) {
	called := false
	create := func(c echo.Context, p *model.CreateCategoryPayload) (*model.Category, error) {
		called = true
		return nil, nil
	}

	c, _ := newTestContext(http.MethodPost, "/", `{"name":""}`)
	err := Handle(Handler{}, create, http.StatusCreated, &model.CreateCategoryPayload{})(c)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, errs.StatusOf(err))
}

func TestHandlePropagatesHandlerError(t *testing.T) {
	boom := errors.New("boom")
	create := func(c echo.Context, p *model.CreateCategoryPayload) (*model.Category, error) {
		return nil, boom
	}

	c, _ := newTestContext(http.MethodPost, "/", `{"name":"Tools"}`)
	err := Handle(Handler{}, create, http.StatusCreated, &model.CreateCategoryPayload{})(c)

	assert.ErrorIs(t, err, boom)
}

func TestHandleNoContent(t *testing.T) {
	var gotID int
	remove := func(c echo.Context, p *model.DeleteProductPayload) error {
		gotID = p.ID
		return nil
	}

	c, rec := newTestContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	require.NoError(t, HandleNoContent(Handler{}, remove, http.StatusNoContent, &model.DeleteProductPayload{})(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 4, gotID)
}

func TestHandleUsesFreshPayloadPerRequest(t *testing.T) {
	var mu sync.Mutex
	seen := map[*model.CreateCategoryPayload]bool{}

	create := func(c echo.Context, p *model.CreateCategoryPayload) (*model.Category, error) {
		mu.Lock()
		seen[p] = true
		mu.Unlock()
		return &model.Category{Name: p.Name}, nil
	}

	handler := Handle(Handler{}, create, http.StatusOK, &model.CreateCategoryPayload{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, _ := newTestContext(http.MethodPost, "/", `{"name":"Tools"}`)
			assert.NoError(t, handler(c))
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 10)
}

func TestCheckHealthWithoutDependencies(t *testing.T) {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "local"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	c, rec := newTestContext(http.MethodGet, "/status", "")
	require.NoError(t, NewHealthHandler(s).CheckHealth(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "local", body.Environment)
}

// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/inventory-api/internal/handler"
	"github.com/deppfellow/inventory-api/internal/middleware"
	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/deppfellow/inventory-api/internal/service"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	m := middleware.NewMiddlewares(s, services)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the request id and New Relic transaction must exist
	// before the context enhancer builds the request logger.
	router.Use(
		m.Global.CORS(),
		m.Global.Secure(),
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		middleware.Metrics(),
		m.Global.Recover(),
		m.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h, s)

	v1 := router.Group("/api/v1", m.RateLimit.Limit())
	registerCategoryRoutes(v1, h, m)
	registerAreaRoutes(v1, h, m)
	registerProductRoutes(v1, h, m)

	return router
}

func registerCategoryRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	categories := g.Group("/categories")

	categories.GET("", handler.Handle(
		h.Category.Handler,
		h.Category.ListCategories,
		http.StatusOK,
		&model.ListCategoriesQuery{},
	))
	categories.GET("/:id", handler.Handle(
		h.Category.Handler,
		h.Category.GetCategory,
		http.StatusOK,
		&model.GetCategoryPayload{},
	))
	categories.POST("", handler.Handle(
		h.Category.Handler,
		h.Category.CreateCategory,
		http.StatusCreated,
		&model.CreateCategoryPayload{},
	), m.Auth.RequireAuth)
}

func registerAreaRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	areas := g.Group("/areas")

	areas.GET("", handler.Handle(
		h.Area.Handler,
		h.Area.ListAreas,
		http.StatusOK,
		&model.ListAreasQuery{},
	))
	areas.GET("/:id", handler.Handle(
		h.Area.Handler,
		h.Area.GetArea,
		http.StatusOK,
		&model.GetAreaPayload{},
	))
	areas.POST("", handler.Handle(
		h.Area.Handler,
		h.Area.CreateArea,
		http.StatusCreated,
		&model.CreateAreaPayload{},
	), m.Auth.RequireAuth)
}

// registerProductRoutes wires the products resource. The validator chains
// run left to right and stop at the first rejection.
func registerProductRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	products := g.Group("/products")
	v := m.Product

	products.GET("", handler.Handle(
		h.Product.Handler,
		h.Product.ListProducts,
		http.StatusOK,
		&model.ListProductsQuery{},
	))

	products.GET("/:id", handler.Handle(
		h.Product.Handler,
		h.Product.GetProduct,
		http.StatusOK,
		&model.GetProductPayload{},
	),
		v.ValidateID,
		v.ProductExists,
	)

	products.POST("", handler.Handle(
		h.Product.Handler,
		h.Product.CreateProduct,
		http.StatusCreated,
		&model.CreateProductPayload{},
	),
		m.Auth.RequireAuth,
		v.CaptureBody,
		v.ValidateName,
		v.ValidatePrice,
		v.ValidateQuantity,
		v.ValidateCategoryID,
		v.ValidateAreaID,
		v.CategoryExists,
		v.AreaExists,
		v.NameAreaUnique,
	)

	products.PUT("/:id", handler.Handle(
		h.Product.Handler,
		h.Product.UpdateProduct,
		http.StatusOK,
		&model.UpdateProductPayload{},
	),
		m.Auth.RequireAuth,
		v.ValidateID,
		v.ProductExists,
		v.CaptureBody,
		v.ValidateName,
		v.ValidatePrice,
		v.ValidateQuantity,
		v.ValidateCategoryID,
		v.ValidateAreaID,
		v.CategoryExists,
		v.AreaExists,
		v.NameAreaUnique,
	)

	products.DELETE("/:id", handler.HandleNoContent(
		h.Product.Handler,
		h.Product.DeleteProduct,
		http.StatusNoContent,
		&model.DeleteProductPayload{},
	),
		m.Auth.RequireAuth,
		v.ValidateID,
		v.ProductExists,
	)
}

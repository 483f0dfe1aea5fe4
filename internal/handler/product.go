package handler

import (
	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/deppfellow/inventory-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ProductHandler serves /api/v1/products. The request validators in front of
// each route have already checked field types and referenced entities.
type ProductHandler struct {
	Handler
	service *service.ProductService
}

func NewProductHandler(s *server.Server, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler: NewHandler(s),
		service: productService,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context, query *model.ListProductsQuery) (*model.PaginatedResponse[model.Product], error) {
	return h.service.List(c.Request().Context(), query)
}

func (h *ProductHandler) GetProduct(c echo.Context, payload *model.GetProductPayload) (*model.Product, error) {
	return h.service.GetByID(c.Request().Context(), payload.ID)
}

func (h *ProductHandler) CreateProduct(c echo.Context, payload *model.CreateProductPayload) (*model.Product, error) {
	return h.service.Create(c.Request().Context(), payload)
}

func (h *ProductHandler) UpdateProduct(c echo.Context, payload *model.UpdateProductPayload) (*model.Product, error) {
	return h.service.Update(c.Request().Context(), payload)
}

func (h *ProductHandler) DeleteProduct(c echo.Context, payload *model.DeleteProductPayload) error {
	return h.service.Delete(c.Request().Context(), payload.ID)
}

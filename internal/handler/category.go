package handler

import (
	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/deppfellow/inventory-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	Handler
	service *service.CategoryService
}

func NewCategoryHandler(s *server.Server, categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler: NewHandler(s),
		service: categoryService,
	}
}

func (h *CategoryHandler) ListCategories(c echo.Context, _ *model.ListCategoriesQuery) ([]model.Category, error) {
	return h.service.List(c.Request().Context())
}

func (h *CategoryHandler) GetCategory(c echo.Context, payload *model.GetCategoryPayload) (*model.Category, error) {
	return h.service.GetByID(c.Request().Context(), payload.ID)
}

func (h *CategoryHandler) CreateCategory(c echo.Context, payload *model.CreateCategoryPayload) (*model.Category, error) {
	return h.service.Create(c.Request().Context(), payload)
}

package handler

import (
	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/deppfellow/inventory-api/internal/service"
	"github.com/labstack/echo/v4"
)

type AreaHandler struct {
	Handler
	service *service.AreaService
}

func NewAreaHandler(s *server.Server, areaService *service.AreaService) *AreaHandler {
	return &AreaHandler{
		Handler: NewHandler(s),
		service: areaService,
	}
}

func (h *AreaHandler) ListAreas(c echo.Context, _ *model.ListAreasQuery) ([]model.Area, error) {
	return h.service.List(c.Request().Context())
}

func (h *AreaHandler) GetArea(c echo.Context, payload *model.GetAreaPayload) (*model.Area, error) {
	return h.service.GetByID(c.Request().Context(), payload.ID)
}

func (h *AreaHandler) CreateArea(c echo.Context, payload *model.CreateAreaPayload) (*model.Area, error) {
	return h.service.Create(c.Request().Context(), payload)
}

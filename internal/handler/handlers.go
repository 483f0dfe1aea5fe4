package handler

import (
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/deppfellow/inventory-api/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Category *CategoryHandler
	Area     *AreaHandler
	Product  *ProductHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Category: NewCategoryHandler(s, services.Category),
		Area:     NewAreaHandler(s, services.Area),
		Product:  NewProductHandler(s, services.Product),
	}
}

package handler

import (
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/deppfellow/catalog-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Product *ProductHandler
	Project *ProjectHandler
}

// NewHandlers builds every handler from the server and the service layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Product: NewProductHandler(s, services.Product),
		Project: NewProjectHandler(s, services.Project),
	}
}

package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/deppfellow/catalog-api/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the interactive API docs.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler builds an OpenAPIHandler.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves openapi.html, which loads /static/openapi.json.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := fs.ReadFile(static.FS, "openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}

package handler

import (
	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/deppfellow/catalog-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ProjectHandler serves the /projects routes, including the pay action.
type ProjectHandler struct {
	Handler
	projectService *service.ProjectService
}

// NewProjectHandler builds a ProjectHandler backed by projectService.
func NewProjectHandler(s *server.Server, projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		Handler:        NewHandler(s),
		projectService: projectService,
	}
}

// CreateProject handles POST /projects.
func (h *ProjectHandler) CreateProject(c echo.Context, payload *model.CreateProjectPayload) (*model.Project, error) {
	return h.projectService.Create(c.Request().Context(), payload)
}

// ListProjects handles GET /projects.
func (h *ProjectHandler) ListProjects(c echo.Context, _ *model.ListPayload) ([]model.Project, error) {
	return h.projectService.List(c.Request().Context())
}

// GetProjectByID handles GET /projects/:id.
func (h *ProjectHandler) GetProjectByID(c echo.Context, payload *model.GetProjectByIDPayload) (*model.Project, error) {
	return h.projectService.GetByID(c.Request().Context(), payload.ID)
}

// UpdateProject handles PUT /projects/:id.
func (h *ProjectHandler) UpdateProject(c echo.Context, payload *model.UpdateProjectPayload) (*model.Project, error) {
	return h.projectService.Update(c.Request().Context(), payload)
}

// DeleteProject handles DELETE /projects/:id.
func (h *ProjectHandler) DeleteProject(c echo.Context, payload *model.DeleteProjectPayload) (*model.MessageResponse, error) {
	return h.projectService.Delete(c.Request().Context(), payload.ID)
}

// MarkProjectPaid handles POST /projects/:id/pagar.
func (h *ProjectHandler) MarkProjectPaid(c echo.Context, payload *model.MarkProjectPaidPayload) (*model.ProjectPaidResponse, error) {
	return h.projectService.MarkPaid(c.Request().Context(), payload.ID)
}

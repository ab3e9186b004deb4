// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/catalog-api/internal/handler"
	"github.com/deppfellow/catalog-api/internal/middleware"
	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the middleware chain and all routes.
//
// Order matters: the request id must exist before tracing and the
// request logger read it, and the transaction must exist before
// EnhanceTracing and ContextEnhancer attach to it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.RateLimiter(),
	)

	registerSystemRoutes(router, h)
	registerProductRoutes(router, h.Product)
	registerProjectRoutes(router, h.Project)

	return router
}

func registerProductRoutes(r *echo.Echo, h *handler.ProductHandler) {
	products := r.Group("/products")

	products.POST("", handler.Handle(h.Handler, h.CreateProduct, http.StatusCreated, &model.CreateProductPayload{}))
	products.GET("", handler.Handle(h.Handler, h.ListProducts, http.StatusOK, &model.ListPayload{}))
	products.GET("/:id", handler.Handle(h.Handler, h.GetProductByID, http.StatusOK, &model.GetProductByIDPayload{}))
	products.PUT("/:id", handler.Handle(h.Handler, h.UpdateProduct, http.StatusOK, &model.UpdateProductPayload{}))
	products.DELETE("/:id", handler.Handle(h.Handler, h.DeleteProduct, http.StatusOK, &model.DeleteProductPayload{}))
}

func registerProjectRoutes(r *echo.Echo, h *handler.ProjectHandler) {
	projects := r.Group("/projects")

	projects.POST("", handler.Handle(h.Handler, h.CreateProject, http.StatusCreated, &model.CreateProjectPayload{}))
	projects.GET("", handler.Handle(h.Handler, h.ListProjects, http.StatusOK, &model.ListPayload{}))
	projects.GET("/:id", handler.Handle(h.Handler, h.GetProjectByID, http.StatusOK, &model.GetProjectByIDPayload{}))
	projects.PUT("/:id", handler.Handle(h.Handler, h.UpdateProject, http.StatusOK, &model.UpdateProjectPayload{}))
	projects.DELETE("/:id", handler.Handle(h.Handler, h.DeleteProject, http.StatusOK, &model.DeleteProjectPayload{}))
	projects.POST("/:id/pagar", handler.Handle(h.Handler, h.MarkProjectPaid, http.StatusOK, &model.MarkProjectPaidPayload{}))
}

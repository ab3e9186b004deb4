package handler

import (
	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/deppfellow/catalog-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ProductHandler serves the /products routes.
//
// Each method is a typed endpoint for Handle: the payload arrives bound
// and validated, and the returned value is written as JSON.
type ProductHandler struct {
	Handler
	productService *service.ProductService
}

// NewProductHandler builds a ProductHandler backed by productService.
func NewProductHandler(s *server.Server, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:        NewHandler(s),
		productService: productService,
	}
}

// CreateProduct handles POST /products.
func (h *ProductHandler) CreateProduct(c echo.Context, payload *model.CreateProductPayload) (*model.Product, error) {
	return h.productService.Create(c.Request().Context(), payload)
}

// ListProducts handles GET /products.
func (h *ProductHandler) ListProducts(c echo.Context, _ *model.ListPayload) ([]model.Product, error) {
	return h.productService.List(c.Request().Context())
}

// GetProductByID handles GET /products/:id.
func (h *ProductHandler) GetProductByID(c echo.Context, payload *model.GetProductByIDPayload) (*model.Product, error) {
	return h.productService.GetByID(c.Request().Context(), payload.ID)
}

// UpdateProduct handles PUT /products/:id.
func (h *ProductHandler) UpdateProduct(c echo.Context, payload *model.UpdateProductPayload) (*model.Product, error) {
	return h.productService.Update(c.Request().Context(), payload)
}

// DeleteProduct handles DELETE /products/:id.
func (h *ProductHandler) DeleteProduct(c echo.Context, payload *model.DeleteProductPayload) (*model.MessageResponse, error) {
	return h.productService.Delete(c.Request().Context(), payload.ID)
}

package service

import (
	"context"
	"errors"

	"github.com/deppfellow/catalog-api/internal/errs"
	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/deppfellow/catalog-api/internal/repository"
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/deppfellow/catalog-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

var productNotFoundCode = "PRODUCT_NOT_FOUND"

// ErrProductNotFound is returned for every lookup of an unknown product id.
func ErrProductNotFound() *errs.HTTPError {
	return errs.NewNotFoundError("Product not found", true, &productNotFoundCode)
}

// ProductService applies the product error policy on top of
// ProductRepository.
//
// Store errors on create and update become a 400 with the database
// message, errors on reads and deletes a 500, and a missing row a 404
// "Product not found".
type ProductService struct {
	server *server.Server
	repo   *repository.ProductRepository
}

// NewProductService builds a ProductService.
func NewProductService(s *server.Server, repo *repository.ProductRepository) *ProductService {
	return &ProductService{server: s, repo: repo}
}

// Create stores a new product.
func (s *ProductService) Create(ctx context.Context, payload *model.CreateProductPayload) (*model.Product, error) {
	product, err := s.repo.Create(ctx, payload.ProductFields)
	if err != nil {
		return nil, sqlerr.HandleWriteError(err)
	}
	return product, nil
}

// List returns every product, [] when there are none.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return products, nil
}

// GetByID returns the product or ErrProductNotFound.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound()
		}
		return nil, sqlerr.HandleError(err)
	}
	return product, nil
}

// Update overwrites the product identified by the payload id.
func (s *ProductService) Update(ctx context.Context, payload *model.UpdateProductPayload) (*model.Product, error) {
	product, err := s.repo.Update(ctx, payload.ID, payload.ProductFields)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound()
		}
		return nil, sqlerr.HandleWriteError(err)
	}
	return product, nil
}

// Delete removes the product and returns the "Product deleted" confirmation.
func (s *ProductService) Delete(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound()
		}
		return nil, sqlerr.HandleError(err)
	}
	return &model.MessageResponse{Message: "Product deleted"}, nil
}

package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/deppfellow/catalog-api/internal/database"
	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const productColumns = "id, name, price, description"

// ProductRepository reads and writes the products table.
//
// Every method is a single statement on the shared pool, so the
// repository holds no state besides the pool and is safe for concurrent use.
type ProductRepository struct {
	pool database.Pool
}

// NewProductRepository builds a ProductRepository on top of pool.
// In production pool is the server's pgxpool; tests pass a pgxmock pool.
func NewProductRepository(pool database.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create inserts a product and returns the stored row, including its
// generated id. Constraint violations are returned as *pgconn.PgError.
func (r *ProductRepository) Create(ctx context.Context, fields model.ProductFields) (*model.Product, error) {
	query, args, err := psql.Insert("products").
		Columns("name", "price", "description").
		Values(fields.Name, fields.Price, fields.Description).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert product query: %w", err)
	}

	return r.collectOne(ctx, query, args...)
}

// List returns every product ordered by id. An empty table yields an empty slice.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query, args, err := psql.Select(productColumns).
		From("products").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list products query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}

// GetByID returns pgx.ErrNoRows when no product has the id.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query, args, err := psql.Select(productColumns).
		From("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building get product query: %w", err)
	}

	return r.collectOne(ctx, query, args...)
}

// Update overwrites every mutable column; nil fields become NULL.
// It returns pgx.ErrNoRows when no product has the id.
func (r *ProductRepository) Update(ctx context.Context, id int64, fields model.ProductFields) (*model.Product, error) {
	query, args, err := psql.Update("products").
		Set("name", fields.Name).
		Set("price", fields.Price).
		Set("description", fields.Description).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update product query: %w", err)
	}

	return r.collectOne(ctx, query, args...)
}

// Delete returns pgx.ErrNoRows when nothing was deleted.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete product query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// collectOne runs a statement expected to return at most one product row.
func (r *ProductRepository) collectOne(ctx context.Context, query string, args ...any) (*model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, err
	}

	return &product, nil
}

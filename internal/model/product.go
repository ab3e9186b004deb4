package model

import "github.com/shopspring/decimal"

// Product is a row of the products table.
type Product struct {
	ID          int64               `json:"id" db:"id"`
	Name        *string             `json:"name" db:"name"`
	Price       decimal.NullDecimal `json:"price" db:"price"`
	Description *string             `json:"description" db:"description"`
}

// ProductFields are the mutable columns of a product.
// Absent JSON keys stay nil and are written as NULL.
type ProductFields struct {
	Name        *string             `json:"name"`
	Price       decimal.NullDecimal `json:"price"`
	Description *string             `json:"description"`
}

type CreateProductPayload struct {
	ProductFields
}

func (p *CreateProductPayload) Validate() error {
	return validate.Struct(p)
}

type UpdateProductPayload struct {
	IDParam
	ProductFields
}

func (p *UpdateProductPayload) Validate() error {
	return validate.Struct(p)
}

type GetProductByIDPayload struct {
	IDParam
}

func (p *GetProductByIDPayload) Validate() error {
	return validate.Struct(p)
}

type DeleteProductPayload struct {
	IDParam
}

func (p *DeleteProductPayload) Validate() error {
	return validate.Struct(p)
}

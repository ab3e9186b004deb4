// Package model holds the records persisted by the store and the request
// payloads accepted by the HTTP layer.
package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Money columns render as JSON numbers, e.g. "price": 1.5.
	decimal.MarshalJSONWithoutQuotes = true
}

// MessageResponse is the body of confirmation-only responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDParam is the ":id" path parameter shared by item routes.
type IDParam struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

// ListPayload is the (empty) request of list routes.
type ListPayload struct{}

func (p *ListPayload) Validate() error {
	return nil
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

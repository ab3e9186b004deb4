package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/catalog-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemPayload struct {
	ID   int64   `param:"id" json:"-" validate:"required,min=1"`
	Name *string `json:"name"`
}

func (p *itemPayload) Validate() error {
	return validator.New().Struct(p)
}

func newContext(method, target, body, id string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetPath("/items/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	t.Run("binds path and body", func(t *testing.T) {
		var payload itemPayload
		c := newContext(http.MethodPut, "/items/4", `{"name":"Pen"}`, "4")

		require.NoError(t, BindAndValidate(c, &payload))
		assert.Equal(t, int64(4), payload.ID)
		assert.Equal(t, "Pen", *payload.Name)
	})

	t.Run("non numeric id", func(t *testing.T) {
		var payload itemPayload
		c := newContext(http.MethodGet, "/items/abc", "", "abc")

		httpErr := requireBadRequest(t, BindAndValidate(c, &payload))
		assert.NotContains(t, httpErr.Message, "code=400")
	})

	t.Run("malformed json", func(t *testing.T) {
		var payload itemPayload
		c := newContext(http.MethodPut, "/items/4", `{"name":`, "4")

		requireBadRequest(t, BindAndValidate(c, &payload))
	})

	t.Run("tag violations become field errors", func(t *testing.T) {
		var payload itemPayload
		c := newContext(http.MethodGet, "/items/0", "", "0")

		httpErr := requireBadRequest(t, BindAndValidate(c, &payload))
		assert.Equal(t, "Validation failed", httpErr.Message)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "id", httpErr.Errors[0].Field)
		assert.Equal(t, "is required", httpErr.Errors[0].Error)
	})
}

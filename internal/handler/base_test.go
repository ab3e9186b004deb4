package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/catalog-api/internal/model"
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	template := &model.CreateProductPayload{}
	template.Name = model.StringPtr("stale")

	req := newRequest(template)

	assert.NotSame(t, template, req)
	assert.Nil(t, req.Name)
}

func TestHandle(t *testing.T) {
	logger := zerolog.Nop()
	h := NewHandler(&server.Server{Logger: &logger})

	var seen []*string
	endpoint := Handle(h, func(c echo.Context, req *model.CreateProductPayload) (*model.MessageResponse, error) {
		seen = append(seen, req.Name)
		return &model.MessageResponse{Message: "ok"}, nil
	}, http.StatusCreated, &model.CreateProductPayload{})

	e := echo.New()
	call := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, endpoint(e.NewContext(req, rec)))
		return rec
	}

	rec := call(`{"name":"first"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())

	call(`{}`)

	require.Len(t, seen, 2)
	assert.Equal(t, "first", *seen[0])
	assert.Nil(t, seen[1], "requests must not share bound state")
}

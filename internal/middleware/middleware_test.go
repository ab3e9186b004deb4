package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/catalog-api/internal/config"
	"github.com/deppfellow/catalog-api/internal/errs"
	"github.com/deppfellow/catalog-api/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}}},
		Logger: &logger,
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer())

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "http errors keep their shape",
			err:     errs.NewNotFoundError("Product not found", true, nil),
			status:  http.StatusNotFound,
			message: "Product not found",
		},
		{
			name:    "unknown routes",
			err:     echo.ErrNotFound,
			status:  http.StatusNotFound,
			message: "Route not found",
		},
		{
			name:    "echo errors keep their status",
			err:     echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded"),
			status:  http.StatusTooManyRequests,
			message: "Rate limit exceeded",
		},
		{
			name:    "driver errors become 500 with their message",
			err:     &pgconn.PgError{Code: "53300", Message: "too many connections"},
			status:  http.StatusInternalServerError,
			message: "too many connections",
		},
		{
			name:    "plain errors become 500",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tc.err, c)

			assert.Equal(t, tc.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, tc.status, body.Status)
		})
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusNoContent)
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})

	t.Run("reuses the incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})
}

func TestEnhanceContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := newTestServer()
	s.Logger = &logger

	e := echo.New()
	e.Use(RequestID())
	e.Use(NewContextEnhancer(s).EnhanceContext())

	e.GET("/products/:id", func(c echo.Context) error {
		GetLogger(c).Info().Msg("from echo")
		zerolog.Ctx(c.Request().Context()).Info().Msg("from ctx")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/products/3", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, `"request_id":"req-1"`)
		assert.Contains(t, line, `"path":"/products/:id"`)
	}
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(newTestServer()).GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(newTestServer()).RateLimiter())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	var limited *httptest.ResponseRecorder
	for range rateLimitBurst + 5 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code == http.StatusTooManyRequests {
			limited = rec
			break
		}
	}

	require.NotNil(t, limited, "expected the limiter to reject a request")
	assert.Equal(t, "Rate limit exceeded", decodeError(t, limited).Message)
}

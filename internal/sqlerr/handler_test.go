package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/catalog-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestMapCode(t *testing.T) {
	cases := map[string]Code{
		"23502": NotNullViolation,
		"23503": ForeignKeyViolation,
		"23505": UniqueViolation,
		"23514": CheckViolation,
		"22P02": InvalidTextRepresentation,
		"22003": NumericValueOutOfRange,
		"22012": DataException,
		"08006": Other,
	}

	for state, want := range cases {
		assert.Equal(t, want, MapCode(state), state)
	}
}

func TestHandleWriteError(t *testing.T) {
	t.Run("not null violation keeps the database message", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:       "23502",
			Severity:   "ERROR",
			Message:    `null value in column "name" of relation "products" violates not-null constraint`,
			TableName:  "products",
			ColumnName: "name",
		}

		httpErr := asHTTPError(t, HandleWriteError(fmt.Errorf("insert: %w", pgErr)))

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, pgErr.Message, httpErr.Message)
		assert.Equal(t, "PRODUCT_REQUIRED", httpErr.Code)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "name", httpErr.Errors[0].Field)
		assert.Equal(t, "The Name is required", httpErr.Errors[0].Error)
	})

	t.Run("check violation on projects", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23514",
			Message:        `new row for relation "projects" violates check constraint "projects_prioridad_check"`,
			TableName:      "projects",
			ConstraintName: "projects_prioridad_check",
		}

		httpErr := asHTTPError(t, HandleWriteError(pgErr))

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "PROJECT_INVALID", httpErr.Code)
		assert.Empty(t, httpErr.Errors)
	})

	t.Run("invalid input syntax without a table", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "22007", Message: `invalid input syntax for type date: "tomorrow"`}

		httpErr := asHTTPError(t, HandleWriteError(pgErr))

		assert.Equal(t, "RECORD_INVALID", httpErr.Code)
		assert.Equal(t, pgErr.Message, httpErr.Message)
	})

	t.Run("non database errors are still client errors", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleWriteError(errors.New("conn closed")))

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "conn closed", httpErr.Message)
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleWriteError(pgx.ErrNoRows))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})
}

func TestHandleError(t *testing.T) {
	t.Run("database errors become 500 with the message", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01", Message: `relation "products" does not exist`}

		httpErr := asHTTPError(t, HandleError(pgErr))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, pgErr.Message, httpErr.Message)
	})

	t.Run("other errors keep their text", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(errors.New("dial tcp: connection refused")))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "dial tcp: connection refused", httpErr.Message)
	})

	t.Run("http errors pass through", func(t *testing.T) {
		original := errs.NewNotFoundError("Project not found", true, nil)
		assert.Same(t, original, HandleError(original))
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}

	assert.Equal(t, UniqueViolation, ErrCode(pgErr))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(pgErr)))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

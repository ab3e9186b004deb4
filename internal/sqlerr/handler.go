package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/catalog-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the Code of err, or Other when err is not a database error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}

	return Other
}

// ConvertPgError converts a raw pgconn.PgError into an Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds a <DOMAIN>_<ACTION> code such as PRODUCT_REQUIRED.
// The domain is the singular table name, RECORD when the table is unknown.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepresentation, NumericValueOutOfRange,
		StringDataTruncation, InvalidDatetimeFormat, DataException:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// fieldErrors returns per-column details when the error names a column.
func fieldErrors(sqlErr *Error) []errs.FieldError {
	if sqlErr.ColumnName == "" {
		return nil
	}

	fieldName := humanizeText(sqlErr.ColumnName)

	switch ErrCode(sqlErr) {
	case NotNullViolation:
		return []errs.FieldError{{
			Field: strings.ToLower(sqlErr.ColumnName),
			Error: fmt.Sprintf("The %s is required", fieldName),
		}}
	case CheckViolation:
		return []errs.FieldError{{
			Field: strings.ToLower(sqlErr.ColumnName),
			Error: fmt.Sprintf("The %s value does not meet required conditions", fieldName),
		}}
	}

	return nil
}

// humanizeText turns "fecha_vencimiento" into "Fecha Vencimiento".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleWriteError converts an error raised by an INSERT or UPDATE.
//
// The store rejected the input, so every failure becomes a 400 whose
// message is the database's own text. Errors that are already an
// *errs.HTTPError pass through, and missing rows become a 404.
func HandleWriteError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if isNoRows(err) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)

		return errs.NewBadRequestError(sqlErr.Message, true, &errorCode, fieldErrors(sqlErr))
	}

	return errs.NewBadRequestError(err.Error(), true, nil, nil)
}

// HandleError converts an error raised by a SELECT, DELETE or the pay update.
//
// Missing rows become a 404. Every other failure becomes a 500 that
// carries the database message.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if isNoRows(err) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errs.NewInternalServerErrorWithMessage(pgErr.Message)
	}

	return errs.NewInternalServerErrorWithMessage(err.Error())
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// Package sqlerr specifically handles database driver errors.
//
// It parses the SQLSTATE codes reported by Postgres and converts them into
// errs.HTTPError values: write paths surface the database message as a
// 400, read paths as a 500, and missing rows as a 404.
package sqlerr

import "strings"

// Code is a coarse classification of a Postgres SQLSTATE.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	NumericValueOutOfRange    Code = "numeric_value_out_of_range"
	StringDataTruncation      Code = "string_data_right_truncation"
	InvalidDatetimeFormat     Code = "invalid_datetime_format"
	DataException             Code = "data_exception"
)

// MapCode maps a SQLSTATE onto a Code.
// Unlisted class 22 states collapse into DataException.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "22P02":
		return InvalidTextRepresentation
	case "22003":
		return NumericValueOutOfRange
	case "22001":
		return StringDataTruncation
	case "22007", "22008":
		return InvalidDatetimeFormat
	}

	if strings.HasPrefix(sqlState, "22") {
		return DataException
	}

	return Other
}

// Error is the normalized form of a Postgres error.
type Error struct {
	Code           Code
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

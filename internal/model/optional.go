package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Optional is a JSON field that records whether its key was present.
//
// Set is true for a value and for an explicit null; Value is nil for null.
// An omitted key leaves both zero.
type Optional[T any] struct {
	Value *T
	Set   bool
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: &v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v

	return nil
}

// Date is a request date. Besides "2006-01-02" it accepts RFC 3339
// timestamps such as "2024-01-01T00:00:00.000Z" and keeps their calendar
// date as written.
type Date struct {
	pgtype.Date
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if err := d.Date.UnmarshalJSON(data); err == nil {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD or an RFC 3339 timestamp", s)
	}

	d.Date = pgtype.Date{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}

	return nil
}

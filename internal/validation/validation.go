// Package validation binds request data and validates it.
//
// It uses the `validator` library to enforce rules defined in struct
// tags and converts bind and validation failures into 400 errors with
// field-level details the client can act on.
package validation

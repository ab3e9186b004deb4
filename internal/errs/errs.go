// Package errs defines the error shapes returned to API clients.
//
// Every failure that reaches the HTTP layer is converted into an HTTPError
// so clients always receive the same JSON structure, with a human readable
// message, a machine readable code and optional field-level details.
package errs

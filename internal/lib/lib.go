// Package lib groups supporting modules that do not fit strictly into
// other layers.
//
// It contains background job processing (Redis/Asynq) and the email
// client (Resend) used for payment notifications.
package lib

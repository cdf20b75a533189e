// Package errors defines the application error taxonomy shared by every
// fallible operation in the auth subsystem.
//
// Every error that crosses a service boundary is an *AppError carrying one of
// five machine-readable codes: BAD_REQUEST, UNAUTHORIZED, CONFLICT, NOT_FOUND
// or INTERNAL_SERVER_ERROR. Transport layers derive the HTTP status and the
// JSON body from the error itself.
//
// Unexpected downstream failures are wrapped into INTERNAL_SERVER_ERROR with a
// sanitized message; the original cause stays attached for logging but is
// never serialized to clients.
package errors

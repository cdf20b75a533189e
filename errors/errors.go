package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code this error maps to.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error. It is logged, never serialized.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates an AppError with an explicit code, message and HTTP status.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Constructors ---

// Validation creates a BAD_REQUEST error that enumerates every violated rule.
// The rule list is preserved both in the message and in details, in order.
func Validation(rules []string) *AppError {
	return &AppError{
		Code:       ErrCodeBadRequest,
		Message:    strings.Join(rules, "; "),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"errors": rules},
	}
}

// InvalidInput creates a BAD_REQUEST error for a single invalid field.
func InvalidInput(field, reason string) *AppError {
	e := &AppError{
		Code:       ErrCodeBadRequest,
		Message:    fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest,
	}
	if field != "" {
		e.Details = map[string]any{"field": field}
	}
	return e
}

// Unauthorized creates an UNAUTHORIZED error.
func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "Authentication required."
	}
	return &AppError{
		Code:       ErrCodeUnauthorized,
		Message:    reason,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Conflict creates a CONFLICT error for a duplicate unique key.
func Conflict(reason string) *AppError {
	return &AppError{
		Code:       ErrCodeConflict,
		Message:    reason,
		HTTPStatus: http.StatusConflict,
	}
}

// NotFound creates a NOT_FOUND error for an absent entity.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"resource": resource},
	}
}

// Internal creates an INTERNAL_SERVER_ERROR with a sanitized message.
// The cause is kept for logging and never reaches the client.
func Internal(message string, cause error) *AppError {
	if message == "" {
		message = "An unexpected error occurred. Please try again."
	}
	return &AppError{
		Code:       ErrCodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

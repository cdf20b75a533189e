package errors

// ErrorCode is a machine-readable error code. The set is deliberately small:
// it is the complete error surface of the RPC layer.
type ErrorCode string

const (
	// ErrCodeBadRequest indicates malformed or invalid caller input.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeUnauthorized indicates an absent, invalid, expired or
	// mismatched credential.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeConflict indicates a duplicate unique key.
	ErrCodeConflict ErrorCode = "CONFLICT"
	// ErrCodeNotFound indicates a referenced entity is absent.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an unexpected downstream failure.
	ErrCodeInternal ErrorCode = "INTERNAL_SERVER_ERROR"
)

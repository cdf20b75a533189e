// Package authctx propagates the authenticated principal through request
// contexts.
//
// The principal is attached by the bearer authenticator after full
// verification and retrieved by procedure handlers:
//
//	principal, ok := authctx.FromContext(ctx)
package authctx

import (
	"context"

	"github.com/kbukum/authkit/user"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	// UserID is the verified subject identifier.
	UserID string
	// User is the sanitized, freshly re-fetched user record.
	User *user.Sanitized
}

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var principalKey = contextKey{}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext retrieves the principal, if any.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok && p != nil
}

// MustFromContext retrieves the principal and panics when absent. Use only
// behind middleware that guarantees authentication.
func MustFromContext(ctx context.Context) *Principal {
	p, ok := FromContext(ctx)
	if !ok {
		panic("authctx: no principal in context")
	}
	return p
}

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace ids,
// HTTP response writing, HTTP client initialization, bearer token parsing,
// and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated request
// identity is stored in the context.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// PrincipalFromContext retrieves the authenticated identity from the context.
//
// Returns ok == false when the request was not authenticated.
//
// Example usage:
//
//	principal, ok := utils.PrincipalFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

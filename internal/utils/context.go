// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// type-safe context keys for the request principal and JWT token
// generation, validation and bearer header parsing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-rest-kit/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the request principal in the
// context.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, id)
}

// IdentityFromContext returns the principal stored in ctx. The ok flag is
// false when no principal was resolved, in which case the guest identity is
// returned.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return id, ok
}

// GetUserIDFromContext returns the ID of the authenticated principal.
//
// ok is false when the request is anonymous.
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := IdentityFromContext(ctx)
	if !ok || id.IsGuest() {
		return 0, false
	}
	return id.UserID, true
}

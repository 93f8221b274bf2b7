// Package utils provides small helpers shared across the service: typed
// context keys, JSON response writing, the outbound HTTP client, JWT token
// issuing and validation, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-fuel-dashboard/models"
)

// contextKey is a private type for context keys so that values stored by
// this package never collide with string keys set elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")
	// RoleCtxKey stores the authenticated user role (models.Role).
	RoleCtxKey = contextKey("role")
)

// WithIdentity returns a copy of ctx carrying the authenticated user id and role.
func WithIdentity(ctx context.Context, userID int64, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleFromContext retrieves the user role from the context.
// ok is false when the value is missing or has an unexpected type.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}

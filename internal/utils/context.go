// Package utils provides general-purpose helpers shared by the sync client
// and the document server: tenant context keys, JSON response writing, the
// resty-based HTTP client and JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// TenantCtxKey is the key used to store the authenticated tenant identifier
// in the request context.
//
//	ctx := context.WithValue(ctx, utils.TenantCtxKey, "tenant-42")
var TenantCtxKey = contextKey("tenantID")

// GetTenantFromContext retrieves the tenant identifier from the context.
// ok is false when the value is missing, has an unexpected type or is empty.
func GetTenantFromContext(ctx context.Context) (string, bool) {
	tenant, ok := ctx.Value(TenantCtxKey).(string)
	return tenant, ok && tenant != ""
}

// WithTenant returns a copy of ctx carrying tenant.
func WithTenant(ctx context.Context, tenant string) context.Context {
	return context.WithValue(ctx, TenantCtxKey, tenant)
}

package jwtattributes

import (
	"context"

	"github.com/auth0/go-jwt-attributes/core"
)

// SetAttributes stores attrs in ctx. Adapters call it before handing the
// request to the next handler.
func SetAttributes(ctx context.Context, attrs Attributes) context.Context {
	return core.SetAttributes(ctx, attrs)
}

// GetAttributes retrieves the attributes extracted for the current request.
//
// Example:
//
//	attrs, err := jwtattributes.GetAttributes(r.Context())
//	if err == nil {
//	    fmt.Println(attrs["subject"])
//	}
func GetAttributes(ctx context.Context) (Attributes, error) {
	return core.GetAttributes[Attributes](ctx)
}

// HasAttributes checks if attributes exist in the context.
func HasAttributes(ctx context.Context) bool {
	return core.HasAttributes(ctx)
}

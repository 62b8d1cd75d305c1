package core

import "context"

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	attributesKey contextKey = iota
)

// GetAttributes retrieves attributes stored by an adapter from the context.
//
// Example usage:
//
//	attrs, err := core.GetAttributes[map[string]any](ctx)
//	if err != nil {
//	    return err
//	}
func GetAttributes[T any](ctx context.Context) (T, error) {
	var zero T

	val := ctx.Value(attributesKey)
	if val == nil {
		return zero, ErrAttributesNotFound
	}

	attrs, ok := val.(T)
	if !ok {
		return zero, ErrAttributesNotFound
	}

	return attrs, nil
}

// SetAttributes stores attributes in the context.
func SetAttributes(ctx context.Context, attrs any) context.Context {
	return context.WithValue(ctx, attributesKey, attrs)
}

// HasAttributes checks if attributes exist in the context without retrieving them.
func HasAttributes(ctx context.Context) bool {
	return ctx.Value(attributesKey) != nil
}

package jwtecho

import (
	"time"

	"github.com/labstack/echo/v4"

	jwtattributes "github.com/auth0/go-jwt-attributes"
)

// DefaultAttributesKey is the echo context key used when none is configured.
const DefaultAttributesKey = "jwt_attributes"

// echoMiddlewareConfig holds all configuration for the middleware
type echoMiddlewareConfig struct {
	extractor  jwtattributes.RequestAttributesExtractor
	contextKey string
	logger     jwtattributes.Logger
}

// NewEchoMiddleware is a constructor for the Echo middleware. Attributes are
// stored on the echo context and in the request context; requests without a
// usable token carry empty attributes and are never rejected.
func NewEchoMiddleware(opts ...Option) echo.MiddlewareFunc {
	config := &echoMiddlewareConfig{
		contextKey: DefaultAttributesKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	extractor := config.extractor
	if extractor == nil {
		// The default configuration cannot fail.
		extractor, _ = jwtattributes.NewJWTClaimExtractor()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			attrs := extractor.Extract(r)

			c.Set(config.contextKey, attrs)
			c.SetRequest(r.WithContext(jwtattributes.SetAttributes(r.Context(), attrs)))

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let echo write the error response so the logged status is final.
				c.Error(err)
			}

			if config.logger != nil {
				config.logger.Info("http exchange", append([]any{
					"method", r.Method,
					"route", c.Path(),
					"path", r.URL.Path,
					"status", c.Response().Status,
					"duration", time.Since(start),
					"bytes", c.Response().Size,
				}, attrs.Args()...)...)
			}
			return nil
		}
	}
}

// GetAttributes extracts the attributes from the Echo context. An empty
// contextKey means DefaultAttributesKey.
func GetAttributes(c echo.Context, contextKey string) (jwtattributes.Attributes, bool) {
	if contextKey == "" {
		contextKey = DefaultAttributesKey
	}
	attrs := c.Get(contextKey)
	if attrs == nil {
		return nil, false
	}

	extracted, ok := attrs.(jwtattributes.Attributes)
	return extracted, ok
}

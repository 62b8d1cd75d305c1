package jwtgin

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	jwtattributes "github.com/auth0/go-jwt-attributes"
)

const DefaultAttributesKey = "jwt_attributes"

var (
	ErrMissingAttributes = errors.New("no attributes found in gin context")
	ErrInvalidAttributes = errors.New("invalid attributes type in gin context")

	// Sentinel errors for configuration validation
	ErrExtractorNil    = errors.New("extractor cannot be nil")
	ErrContextKeyEmpty = errors.New("context key cannot be empty")
	ErrLoggerNil       = errors.New("logger cannot be nil")
)

type GinMiddlewareConfig struct {
	extractor  jwtattributes.RequestAttributesExtractor
	contextKey string
	logger     jwtattributes.Logger
}

// NewGinMiddleware creates a Gin middleware that extracts attributes from
// every request, stores them on the gin context and in the request context,
// and logs the exchange once the handler chain returns.
//
// Extraction never aborts the chain: requests without a usable token simply
// carry empty attributes.
func NewGinMiddleware(opts ...Option) (gin.HandlerFunc, error) {
	config := &GinMiddlewareConfig{
		contextKey: DefaultAttributesKey,
	}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	if config.extractor == nil {
		extractor, err := jwtattributes.NewJWTClaimExtractor()
		if err != nil {
			return nil, err
		}
		config.extractor = extractor
	}

	return func(c *gin.Context) {
		attrs := config.extractor.Extract(c.Request)

		c.Set(config.contextKey, attrs)
		c.Request = c.Request.WithContext(jwtattributes.SetAttributes(c.Request.Context(), attrs))

		start := time.Now()
		c.Next()

		if config.logger != nil {
			config.logger.Info("http exchange", append([]any{
				"method", c.Request.Method,
				"route", c.FullPath(),
				"path", c.Request.URL.Path,
				"status", c.Writer.Status(),
				"duration", time.Since(start),
				"bytes", c.Writer.Size(),
			}, attrs.Args()...)...)
		}
	}, nil
}

// GetAttributes returns the attributes stored by the middleware. An empty
// contextKey means DefaultAttributesKey.
func GetAttributes(c *gin.Context, contextKey string) (jwtattributes.Attributes, error) {
	if contextKey == "" {
		contextKey = DefaultAttributesKey
	}
	attrs, exists := c.Get(contextKey)
	if !exists {
		return nil, ErrMissingAttributes
	}

	extracted, ok := attrs.(jwtattributes.Attributes)
	if !ok {
		return nil, ErrInvalidAttributes
	}

	return extracted, nil
}

package jwtecho

import (
	jwtattributes "github.com/auth0/go-jwt-attributes"
)

// Option is a function that configures the middleware
type Option func(*echoMiddlewareConfig)

// WithExtractor sets the extractor run for every request. A nil extractor
// keeps the default.
func WithExtractor(extractor jwtattributes.RequestAttributesExtractor) Option {
	return func(config *echoMiddlewareConfig) {
		config.extractor = extractor
	}
}

// WithContextKey sets a custom context key to store attributes. An empty key
// keeps DefaultAttributesKey.
func WithContextKey(key string) Option {
	return func(config *echoMiddlewareConfig) {
		if key != "" {
			config.contextKey = key
		}
	}
}

// WithLogger sets the logger that receives one entry per exchange.
func WithLogger(logger jwtattributes.Logger) Option {
	return func(config *echoMiddlewareConfig) {
		config.logger = logger
	}
}

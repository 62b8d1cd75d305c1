package jwtgin

import jwtattributes "github.com/auth0/go-jwt-attributes"

// Option defines a functional option for configuring the middleware
type Option func(*GinMiddlewareConfig) error

// WithExtractor sets the extractor run for every request.
//
// Default: jwtattributes.NewJWTClaimExtractor()
func WithExtractor(e jwtattributes.RequestAttributesExtractor) Option {
	return func(config *GinMiddlewareConfig) error {
		if e == nil {
			return ErrExtractorNil
		}
		config.extractor = e
		return nil
	}
}

// WithContextKey sets the gin context key the attributes are stored under.
func WithContextKey(key string) Option {
	return func(config *GinMiddlewareConfig) error {
		if key == "" {
			return ErrContextKeyEmpty
		}
		config.contextKey = key
		return nil
	}
}

// WithLogger sets the logger that receives one entry per exchange.
func WithLogger(logger jwtattributes.Logger) Option {
	return func(config *GinMiddlewareConfig) error {
		if logger == nil {
			return ErrLoggerNil
		}
		config.logger = logger
		return nil
	}
}

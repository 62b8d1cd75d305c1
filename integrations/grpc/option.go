package grpc

import (
	"errors"

	jwtattributes "github.com/auth0/go-jwt-attributes"
)

// Option configures the Interceptor.
type Option func(*Interceptor) error

// Logger defines an optional logging interface compatible with log/slog.
// This is the same interface used by the HTTP middleware.
type Logger = jwtattributes.Logger

// Sentinel errors for configuration validation
var (
	ErrExtractorNil = errors.New("extractor cannot be nil")
	ErrLoggerNil    = errors.New("logger cannot be nil")
)

// WithExtractor sets the extractor run for every call. It receives a
// synthetic *http.Request whose headers are the call metadata and whose path
// is the full gRPC method name.
//
// Default: jwtattributes.NewJWTClaimExtractor()
func WithExtractor(e jwtattributes.RequestAttributesExtractor) Option {
	return func(i *Interceptor) error {
		if e == nil {
			return ErrExtractorNil
		}
		i.extractor = e
		return nil
	}
}

// WithLogger sets the logger that receives one entry per call.
func WithLogger(logger Logger) Option {
	return func(i *Interceptor) error {
		if logger == nil {
			return ErrLoggerNil
		}
		i.logger = logger
		return nil
	}
}

// WithExcludedMethods lists full method names, such as
// "/grpc.health.v1.Health/Check", that are passed through untouched.
func WithExcludedMethods(methods ...string) Option {
	return func(i *Interceptor) error {
		for _, method := range methods {
			i.excludedMethods[method] = true
		}
		return nil
	}
}

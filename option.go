package jwtattributes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/auth0/go-jwt-attributes/core"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// ClaimOption configures a JWTClaimExtractor.
// Returns error for validation failures.
type ClaimOption func(*JWTClaimExtractor) error

// WithClaimNames sets the claim names tried in priority order. The first
// name whose value is a JSON string wins; names holding numbers, objects,
// arrays, booleans or null are skipped.
//
// Default: ["sub"]
func WithClaimNames(names ...string) ClaimOption {
	return func(e *JWTClaimExtractor) error {
		e.coreOpts = append(e.coreOpts, core.WithClaimNames(names...))
		return nil
	}
}

// WithClaimKey sets the attribute key the claim value is stored under.
//
// Default: "subject"
func WithClaimKey(key string) ClaimOption {
	return func(e *JWTClaimExtractor) error {
		if strings.TrimSpace(key) == "" {
			return ErrClaimKeyEmpty
		}
		e.claimKey = key
		return nil
	}
}

// WithClaimsDecoder sets the decoder used for token payloads.
//
// Default: core.StandardDecoder
func WithClaimsDecoder(d core.ClaimsDecoder) ClaimOption {
	return func(e *JWTClaimExtractor) error {
		e.coreOpts = append(e.coreOpts, core.WithDecoder(d))
		return nil
	}
}

// Option configures the Middleware.
// Returns error for validation failures.
type Option func(*Middleware) error

// WithExtractor sets the extractor run for every exchange. Combine several
// with CompositeExtractor.
//
// Default: a JWTClaimExtractor reading "sub" into "subject"
func WithExtractor(e RequestAttributesExtractor) Option {
	return func(m *Middleware) error {
		if e == nil {
			return ErrExtractorNil
		}
		m.extractor = e
		return nil
	}
}

// WithLogger sets the logger that receives one entry per exchange.
//
// The logger interface is compatible with log/slog.Logger; use
// NewLogrusLogger for logrus.
//
// Example:
//
//	middleware, err := jwtattributes.New(
//	    jwtattributes.WithLogger(jwtattributes.NewLogrusLogger(logrus.StandardLogger())),
//	)
func WithLogger(logger Logger) Option {
	return func(m *Middleware) error {
		if logger == nil {
			return ErrLoggerNil
		}
		m.logger = logger
		return nil
	}
}

// WithTracer makes the middleware start a span per exchange with tracer and
// record the attributes on it. Without a tracer the attributes are added to
// the span already present in the request context, if any.
func WithTracer(tracer oteltrace.Tracer) Option {
	return func(m *Middleware) error {
		if tracer == nil {
			return ErrTracerNil
		}
		m.tracer = tracer
		return nil
	}
}

// WithMetrics records extraction outcomes and exchange durations.
//
// Example:
//
//	middleware, err := jwtattributes.New(
//	    jwtattributes.WithMetrics(jwtattributes.NewMetrics(prometheus.DefaultRegisterer)),
//	)
func WithMetrics(metrics *Metrics) Option {
	return func(m *Middleware) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		m.metrics = metrics
		return nil
	}
}

// WithExclusionUrls configures URLs that are passed through untouched.
// URLs can be full URLs or just paths.
func WithExclusionUrls(exclusions []string) Option {
	return func(m *Middleware) error {
		if len(exclusions) == 0 {
			return ErrExclusionUrlsEmpty
		}
		m.exclusionURLHandler = func(r *http.Request) bool {
			requestFullURL := r.URL.String()
			requestPath := r.URL.Path

			for _, exclusion := range exclusions {
				if requestFullURL == exclusion || requestPath == exclusion {
					return true
				}
			}
			return false
		}
		return nil
	}
}

// Sentinel errors for configuration validation
var (
	ErrClaimKeyEmpty      = errors.New("claim key cannot be empty")
	ErrExtractorNil       = errors.New("extractor cannot be nil")
	ErrLoggerNil          = errors.New("logger cannot be nil")
	ErrTracerNil          = errors.New("tracer cannot be nil")
	ErrMetricsNil         = errors.New("metrics cannot be nil")
	ErrExclusionUrlsEmpty = errors.New("exclusion URLs list cannot be empty")
)

package jwtattributes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Middleware runs a RequestAttributesExtractor on every inbound request
// (Handler) or outbound request (RoundTripper) and attaches the result to the
// request context, the active span, the metrics and the exchange log entry.
type Middleware struct {
	extractor           RequestAttributesExtractor
	logger              Logger
	tracer              oteltrace.Tracer
	metrics             *Metrics
	exclusionURLHandler ExclusionURLHandler
	trustedProxies      *TrustedProxyConfig
}

// ExclusionURLHandler is a function that takes in a http.Request and returns
// true if the request should be passed through without extraction.
type ExclusionURLHandler func(r *http.Request) bool

// New constructs a new Middleware instance with the supplied options.
//
// Example:
//
//	middleware, err := jwtattributes.New(
//	    jwtattributes.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatalf("failed to create middleware: %v", err)
//	}
//	http.Handle("/api/", middleware.Handler(apiHandler))
func New(opts ...Option) (*Middleware, error) {
	m := &Middleware{}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	if err := m.applyDefaults(); err != nil {
		return nil, fmt.Errorf("invalid middleware configuration: %w", err)
	}

	return m, nil
}

// applyDefaults sets default values for optional fields not set by options
func (m *Middleware) applyDefaults() error {
	if m.extractor == nil {
		e, err := NewJWTClaimExtractor()
		if err != nil {
			return err
		}
		m.extractor = e
	}
	return nil
}

// Extract runs the configured extractor for r, as the middleware would.
func (m *Middleware) Extract(r *http.Request) Attributes {
	return m.extractor.Extract(r)
}

// Handler wraps next so that every request it serves carries the extracted
// attributes in its context and produces one "http exchange" log entry.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.excluded(r) {
			next.ServeHTTP(w, r)
			return
		}

		attrs := m.extract(r, directionInbound)

		ctx := r.Context()
		span := oteltrace.SpanFromContext(ctx)
		if m.tracer != nil {
			ctx, span = m.tracer.Start(ctx, "HTTP "+r.Method, oteltrace.WithSpanKind(oteltrace.SpanKindServer))
			defer span.End()
		}
		annotateSpan(span, attrs)

		r = r.WithContext(SetAttributes(ctx, attrs))
		snoop := httpsnoop.CaptureMetrics(next, w, r)

		if m.metrics != nil {
			m.metrics.observeExchange(directionInbound, snoop.Duration)
		}
		if m.logger != nil {
			m.logger.Info("http exchange", append([]any{
				"direction", directionInbound,
				"method", r.Method,
				"url", requestURL(r, m.trustedProxies),
				"status", snoop.Code,
				"duration", snoop.Duration,
				"bytes", snoop.Written,
			}, attrs.Args()...)...)
		}
	})
}

// RoundTripper wraps next so that every outgoing request is logged with the
// attributes extracted from it. A nil next uses http.DefaultTransport. The
// request passed in is never modified.
func (m *Middleware) RoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if m.excluded(r) {
			return next.RoundTrip(r)
		}

		attrs := m.extract(r, directionOutbound)

		ctx := r.Context()
		span := oteltrace.SpanFromContext(ctx)
		if m.tracer != nil {
			ctx, span = m.tracer.Start(ctx, "HTTP "+r.Method, oteltrace.WithSpanKind(oteltrace.SpanKindClient))
			defer span.End()
			r = r.WithContext(ctx)
		}
		annotateSpan(span, attrs)

		start := time.Now()
		resp, err := next.RoundTrip(r)
		duration := time.Since(start)

		if m.metrics != nil {
			m.metrics.observeExchange(directionOutbound, duration)
		}
		if m.logger == nil {
			return resp, err
		}

		args := []any{
			"direction", directionOutbound,
			"method", r.Method,
			"url", r.URL.String(),
			"duration", duration,
		}
		if err != nil {
			m.logger.Warn("http exchange failed", append(append(args, "error", err), attrs.Args()...)...)
			return resp, err
		}
		m.logger.Info("http exchange", append(append(args, "status", resp.StatusCode), attrs.Args()...)...)
		return resp, nil
	})
}

func (m *Middleware) excluded(r *http.Request) bool {
	if m.exclusionURLHandler == nil || !m.exclusionURLHandler(r) {
		return false
	}
	if m.logger != nil {
		m.logger.Debug("skipping attribute extraction for excluded URL",
			"method", r.Method,
			"path", r.URL.Path)
	}
	return true
}

func (m *Middleware) extract(r *http.Request, direction string) Attributes {
	attrs := m.extractor.Extract(r)
	if m.metrics != nil {
		m.metrics.observeExtraction(direction, attrs)
	}
	return attrs
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

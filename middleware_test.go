package jwtattributes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/auth0/go-jwt-attributes/internal/jwttest"
)

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fields := make(map[string]any)
	for i := 0; i+1 < len(args); i += 2 {
		fields[fmt.Sprint(args[i])] = args[i+1]
	}
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any) { l.record("error", msg, args) }

func (l *recordingLogger) all() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}

func Test_Handler(t *testing.T) {
	aliceToken := jwttest.Bearer(jwttest.Sign(t, map[string]any{"sub": "alice"}))

	testCases := []struct {
		name          string
		authorization string
		path          string
		wantAttrs     Attributes
		wantSubject   any
	}{
		{
			name:          "it extracts the subject",
			authorization: aliceToken,
			path:          "/api/users",
			wantAttrs:     Attributes{"subject": "alice"},
			wantSubject:   "alice",
		},
		{
			name:          "it continues without a token",
			authorization: "",
			path:          "/api/users",
		},
		{
			name:          "it continues with a malformed token",
			authorization: "Bearer i-am-not-a-jwt",
			path:          "/api/users",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			logger := &recordingLogger{}
			m, err := New(WithLogger(logger))
			require.NoError(t, err)

			var gotAttrs Attributes
			handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var err error
				gotAttrs, err = GetAttributes(r.Context())
				require.NoError(t, err)
				w.WriteHeader(http.StatusCreated)
				_, _ = io.WriteString(w, `{"message":"created"}`)
			}))

			r := httptest.NewRequest(http.MethodPost, "http://example.com"+testCase.path+"?page=2", nil)
			if testCase.authorization != "" {
				r.Header.Set("Authorization", testCase.authorization)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Equal(t, `{"message":"created"}`, w.Body.String())
			if diff := cmp.Diff(testCase.wantAttrs, gotAttrs, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("unexpected attributes (-want +got):\n%s", diff)
			}

			entries := logger.all()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, "info", entry.level)
			assert.Equal(t, "http exchange", entry.msg)
			assert.Equal(t, directionInbound, entry.fields["direction"])
			assert.Equal(t, http.MethodPost, entry.fields["method"])
			assert.Equal(t, "http://example.com"+testCase.path+"?page=2", entry.fields["url"])
			assert.Equal(t, http.StatusCreated, entry.fields["status"])
			assert.Equal(t, int64(len(`{"message":"created"}`)), entry.fields["bytes"])
			assert.Equal(t, testCase.wantSubject, entry.fields["subject"])
		})
	}
}

func Test_Handler_ExcludedURL(t *testing.T) {
	logger := &recordingLogger{}
	m, err := New(WithLogger(logger), WithExclusionUrls([]string{"/health"}))
	require.NoError(t, err)

	var called bool
	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.False(t, HasAttributes(r.Context()))
	}))

	r := httptest.NewRequest(http.MethodGet, "http://example.com/health", nil)
	r.Header.Set("Authorization", jwttest.Bearer(jwttest.Unsigned(`{"sub":"alice"}`)))
	handler.ServeHTTP(httptest.NewRecorder(), r)

	assert.True(t, called)
	entries := logger.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "debug", entries[0].level)
}

func Test_Handler_StartsSpanWithTracer(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	m, err := New(WithTracer(tp.Tracer("test")))
	require.NoError(t, err)

	var inner oteltrace.SpanContext
	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = oteltrace.SpanContextFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "http://example.com/api", nil)
	r.Header.Set("Authorization", jwttest.Bearer(jwttest.Unsigned(`{"sub":"alice"}`)))
	handler.ServeHTTP(httptest.NewRecorder(), r)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "HTTP GET", ended[0].Name())
	assert.Equal(t, oteltrace.SpanKindServer, ended[0].SpanKind())
	assert.Contains(t, ended[0].Attributes(), attribute.String("subject", "alice"))
	assert.Equal(t, ended[0].SpanContext().SpanID(), inner.SpanID())
}

func Test_Handler_AnnotatesSpanFromContext(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	m, err := New()
	require.NoError(t, err)
	handler := m.Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	ctx, span := tp.Tracer("test").Start(context.Background(), "server")
	r := httptest.NewRequest(http.MethodGet, "http://example.com/api", nil).WithContext(ctx)
	r.Header.Set("Authorization", jwttest.Bearer(jwttest.Unsigned(`{"sub":"alice"}`)))
	handler.ServeHTTP(httptest.NewRecorder(), r)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Contains(t, ended[0].Attributes(), attribute.String("subject", "alice"))
}

func Test_Handler_RecordsMetrics(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	m, err := New(WithMetrics(metrics))
	require.NoError(t, err)
	handler := m.Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	withToken := httptest.NewRequest(http.MethodGet, "http://example.com/api", nil)
	withToken.Header.Set("Authorization", jwttest.Bearer(jwttest.Unsigned(`{"sub":"alice"}`)))
	handler.ServeHTTP(httptest.NewRecorder(), withToken)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "http://example.com/api", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "http://example.com/api", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.extractions.WithLabelValues(directionInbound, resultFound)))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.extractions.WithLabelValues(directionInbound, resultEmpty)))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.exchangeDuration))
}

func Test_Handler_CompositeExtractor(t *testing.T) {
	claim, err := NewJWTClaimExtractor(WithClaimNames("email", "sub"), WithClaimKey("principal"))
	require.NoError(t, err)
	tenant := ExtractorFunc(func(r *http.Request) Attributes {
		if v := r.Header.Get("X-Tenant"); v != "" {
			return Of("tenant", v)
		}
		return nil
	})

	m, err := New(WithExtractor(CompositeExtractor(claim, tenant)))
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "http://example.com/api", nil)
	r.Header.Set("Authorization", jwttest.Bearer(jwttest.Unsigned(`{"email":"bob@example.com","sub":"bob"}`)))
	r.Header.Set("X-Tenant", "acme")

	assert.Equal(t, Attributes{"principal": "bob@example.com", "tenant": "acme"}, m.Extract(r))
}

func Test_RoundTripper(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	logger := &recordingLogger{}
	metrics := NewMetrics(prometheus.NewRegistry())
	m, err := New(WithLogger(logger), WithMetrics(metrics))
	require.NoError(t, err)

	client := &http.Client{Transport: m.RoundTripper(server.Client().Transport)}
	authorization := jwttest.Bearer(jwttest.Unsigned(`{"sub":"alice"}`))

	req, err := http.NewRequest(http.MethodGet, server.URL+"/downstream", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", authorization)

	resp, err := client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, authorization, req.Header.Get("Authorization"))

	entries := logger.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0].level)
	assert.Equal(t, directionOutbound, entries[0].fields["direction"])
	assert.Equal(t, server.URL+"/downstream", entries[0].fields["url"])
	assert.Equal(t, http.StatusAccepted, entries[0].fields["status"])
	assert.Equal(t, "alice", entries[0].fields["subject"])
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.extractions.WithLabelValues(directionOutbound, resultFound)))
}

func Test_RoundTripper_Error(t *testing.T) {
	logger := &recordingLogger{}
	m, err := New(WithLogger(logger))
	require.NoError(t, err)

	wantErr := errors.New("connection refused")
	failing := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, wantErr
	})

	req := httptest.NewRequest(http.MethodGet, "http://example.com/downstream", nil)
	req.Header.Set("Authorization", jwttest.Bearer(jwttest.Unsigned(`{"sub":"alice"}`)))

	resp, err := m.RoundTripper(failing).RoundTrip(req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, wantErr)
	entries := logger.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0].level)
	assert.Equal(t, wantErr, entries[0].fields["error"])
	assert.Equal(t, "alice", entries[0].fields["subject"])
}

func Test_RoundTripper_StartsClientSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	m, err := New(WithTracer(tp.Tracer("test")))
	require.NoError(t, err)

	ok := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		assert.True(t, oteltrace.SpanContextFromContext(r.Context()).IsValid())
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "http://example.com/downstream", nil)
	req.Header.Set("Authorization", jwttest.Bearer(jwttest.Unsigned(`{"sub":"alice"}`)))
	_, err = m.RoundTripper(ok).RoundTrip(req)
	require.NoError(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, oteltrace.SpanKindClient, ended[0].SpanKind())
	assert.Contains(t, ended[0].Attributes(), attribute.String("subject", "alice"))
	assert.False(t, oteltrace.SpanContextFromContext(req.Context()).IsValid())
}

package jwtattributes

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// spanAttributes converts attrs into OpenTelemetry attributes, sorted by key.
// Values without a native attribute type are recorded with fmt.Sprint.
func spanAttributes(attrs Attributes) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for _, k := range attrs.Keys() {
		switch v := attrs[k].(type) {
		case string:
			kvs = append(kvs, attribute.String(k, v))
		case bool:
			kvs = append(kvs, attribute.Bool(k, v))
		case int:
			kvs = append(kvs, attribute.Int(k, v))
		case int64:
			kvs = append(kvs, attribute.Int64(k, v))
		case float64:
			kvs = append(kvs, attribute.Float64(k, v))
		case []string:
			kvs = append(kvs, attribute.StringSlice(k, v))
		default:
			kvs = append(kvs, attribute.String(k, fmt.Sprint(v)))
		}
	}
	return kvs
}

// annotateSpan records attrs on span. Non-recording spans are left alone.
func annotateSpan(span oteltrace.Span, attrs Attributes) {
	if attrs.IsEmpty() || !span.IsRecording() {
		return
	}
	span.SetAttributes(spanAttributes(attrs)...)
}

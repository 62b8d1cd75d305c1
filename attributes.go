package jwtattributes

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Attributes is a set of key/value pairs attached to the log entry or span of
// an HTTP exchange. A nil Attributes is empty and safe to read.
type Attributes map[string]any

// Of returns Attributes holding a single pair.
func Of(key string, value any) Attributes {
	return Attributes{key: value}
}

// IsEmpty reports whether a holds no pairs.
func (a Attributes) IsEmpty() bool {
	return len(a) == 0
}

// With returns a copy of a with key set to value.
func (a Attributes) With(key string, value any) Attributes {
	return a.Merge(Of(key, value))
}

// Merge returns a new Attributes holding the pairs of a and other. Keys in
// other overwrite keys in a. Neither receiver nor argument is modified.
func (a Attributes) Merge(other Attributes) Attributes {
	if len(a)+len(other) == 0 {
		return nil
	}
	merged := make(Attributes, len(a)+len(other))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Keys returns the keys of a in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Args flattens a into alternating key/value arguments, sorted by key, as
// accepted by Logger and log/slog.
func (a Attributes) Args() []any {
	args := make([]any, 0, 2*len(a))
	for _, k := range a.Keys() {
		args = append(args, k, a[k])
	}
	return args
}

// Fields converts a into logrus.Fields.
func (a Attributes) Fields() logrus.Fields {
	fields := make(logrus.Fields, len(a))
	for k, v := range a {
		fields[k] = v
	}
	return fields
}

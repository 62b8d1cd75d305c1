package jwtattributes

import (
	"net/http"
)

// RequestAttributesExtractor derives attributes from a request. Extract must
// be safe for concurrent use, must not modify the request and must not panic.
// A request that yields nothing returns empty Attributes, never an error.
type RequestAttributesExtractor interface {
	Extract(r *http.Request) Attributes
}

// ExtractorFunc adapts a function to the RequestAttributesExtractor interface.
type ExtractorFunc func(r *http.Request) Attributes

// Extract calls f(r).
func (f ExtractorFunc) Extract(r *http.Request) Attributes {
	return f(r)
}

// NoopExtractor never yields attributes.
var NoopExtractor RequestAttributesExtractor = ExtractorFunc(func(*http.Request) Attributes {
	return nil
})

// CompositeExtractor returns a RequestAttributesExtractor that runs
// extractors in order and merges their results. When two extractors yield the
// same key the later one wins. Nil extractors are skipped.
func CompositeExtractor(extractors ...RequestAttributesExtractor) RequestAttributesExtractor {
	return ExtractorFunc(func(r *http.Request) Attributes {
		var attrs Attributes
		for _, ex := range extractors {
			if ex == nil {
				continue
			}
			attrs = attrs.Merge(ex.Extract(r))
		}
		return attrs
	})
}

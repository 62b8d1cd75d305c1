package jwtattributes

import (
	"fmt"
	"net/http"

	"github.com/auth0/go-jwt-attributes/core"
)

// DefaultClaimKey is the attribute key used when none is configured.
const DefaultClaimKey = "subject"

const authorizationHeader = "Authorization"

// JWTClaimExtractor is a RequestAttributesExtractor that copies one claim of
// an unverified bearer JWT into the attributes of the exchange.
//
// The token signature and expiry are NOT checked, so the value is only fit
// for logs and traces. Every failure, from a missing header to a payload
// without a matching claim, yields empty Attributes.
type JWTClaimExtractor struct {
	core     *core.Core
	claimKey string

	// Temporary fields used during construction
	coreOpts []core.Option
}

// NewJWTClaimExtractor constructs a JWTClaimExtractor. Without options it
// reads the "sub" claim into the "subject" attribute.
//
// Example:
//
//	extractor, err := jwtattributes.NewJWTClaimExtractor(
//	    jwtattributes.WithClaimNames("email", "sub"),
//	    jwtattributes.WithClaimKey("principal"),
//	)
//	if err != nil {
//	    log.Fatalf("failed to create extractor: %v", err)
//	}
func NewJWTClaimExtractor(opts ...ClaimOption) (*JWTClaimExtractor, error) {
	e := &JWTClaimExtractor{
		claimKey: DefaultClaimKey,
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	c, err := core.New(e.coreOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create core: %w", err)
	}
	e.core = c
	e.coreOpts = nil

	return e, nil
}

// Extract implements RequestAttributesExtractor.
func (e *JWTClaimExtractor) Extract(r *http.Request) Attributes {
	if r == nil {
		return nil
	}
	return e.ExtractHeader(r.Header)
}

// ExtractHeader runs the extraction against the first Authorization value of
// h. It is used by transports that carry headers without an *http.Request.
func (e *JWTClaimExtractor) ExtractHeader(h http.Header) (attrs Attributes) {
	// A custom decoder must not be able to take the exchange down with it.
	defer func() {
		if recover() != nil {
			attrs = nil
		}
	}()

	values := h.Values(authorizationHeader)
	if len(values) == 0 {
		return nil
	}

	value, err := e.core.Claim(values[0])
	if err != nil {
		return nil
	}
	return Of(e.claimKey, value)
}

// ClaimKey returns the attribute key the claim is stored under.
func (e *JWTClaimExtractor) ClaimKey() string {
	return e.claimKey
}

// ClaimNames returns a copy of the claim names tried, in priority order.
func (e *JWTClaimExtractor) ClaimNames() []string {
	return e.core.ClaimNames()
}

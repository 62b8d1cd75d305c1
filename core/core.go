package core

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// DefaultSubjectClaim is the claim read when no claim names are configured.
// RFC 7519 section 4.1.2: the "sub" claim identifies the principal that is the
// subject of the JWT.
const DefaultSubjectClaim = "sub"

// bearerJWT matches the whole Authorization value and captures the payload
// segment. RE2 keeps matching linear in the length of the header.
var bearerJWT = regexp.MustCompile(`(?i)^Bearer [a-z0-9_-]+\.([a-z0-9_-]+)\.[a-z0-9_-]+$`)

// Core reads a single claim from an unverified bearer token.
// It is immutable once built and safe for concurrent use.
type Core struct {
	claimNames []string
	decoder    ClaimsDecoder
}

// Claim returns the first configured claim holding a string value in the
// payload of the bearer token carried by authorization. The signature is not
// checked. Every failure is reported as one of the package's sentinel errors.
func (c *Core) Claim(authorization string) (string, error) {
	segment, err := payloadSegment(authorization)
	if err != nil {
		return "", err
	}

	payload, err := decodeSegment(segment)
	if err != nil {
		return "", err
	}

	claims, err := c.parse(payload)
	if err != nil {
		return "", err
	}

	value, ok := claims.FirstString(c.claimNames)
	if !ok {
		return "", ErrClaimNotFound
	}
	return value, nil
}

// ClaimNames returns a copy of the configured claim names in priority order.
func (c *Core) ClaimNames() []string {
	return append([]string(nil), c.claimNames...)
}

func payloadSegment(authorization string) (string, error) {
	if authorization == "" {
		return "", ErrAuthorizationMissing
	}

	match := bearerJWT.FindStringSubmatch(authorization)
	if match == nil {
		return "", ErrMalformedToken
	}
	return match[1], nil
}

func decodeSegment(segment string) ([]byte, error) {
	payload, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayloadEncoding, err)
	}
	return payload, nil
}

func (c *Core) parse(payload []byte) (Claims, error) {
	if !utf8.Valid(payload) {
		return nil, fmt.Errorf("%w: invalid utf-8", ErrPayloadJSON)
	}

	// Decoders differ in how strictly they scan; only RFC 8259 text passes.
	if !json.Valid(payload) {
		return nil, fmt.Errorf("%w: invalid json", ErrPayloadJSON)
	}

	claims, err := c.decoder.DecodeClaims(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayloadJSON, err)
	}

	// A JSON null root decodes into a nil map without error.
	if claims == nil {
		return nil, fmt.Errorf("%w: root is not an object", ErrPayloadJSON)
	}
	return claims, nil
}

package core

import "errors"

// Sentinel errors for each stage of claim extraction. Adapters collapse all of
// them into an empty result; they exist so callers of Core.Claim and tests can
// tell the stages apart.
var (
	// ErrAuthorizationMissing is returned when the request carries no
	// Authorization value.
	ErrAuthorizationMissing = errors.New("authorization missing")

	// ErrMalformedToken is returned when the Authorization value is not
	// "Bearer " followed by a three segment Base64URL token.
	ErrMalformedToken = errors.New("authorization is not a bearer jwt")

	// ErrPayloadEncoding is returned when the payload segment is not valid
	// Base64URL.
	ErrPayloadEncoding = errors.New("jwt payload is not base64url")

	// ErrPayloadJSON is returned when the decoded payload is not UTF-8 text
	// holding a JSON object.
	ErrPayloadJSON = errors.New("jwt payload is not a json object")

	// ErrClaimNotFound is returned when none of the configured claim names
	// holds a string value.
	ErrClaimNotFound = errors.New("no configured claim holds a string")

	// ErrAttributesNotFound is returned when attributes cannot be retrieved from context.
	ErrAttributesNotFound = errors.New("attributes not found in context")
)

// Configuration errors returned by New.
var (
	ErrClaimNamesEmpty = errors.New("claim names cannot be empty")
	ErrClaimNameBlank  = errors.New("claim name cannot be blank")
	ErrDecoderNil      = errors.New("claims decoder cannot be nil")
)

/*
Package core provides the framework-agnostic claim extraction pipeline that
is shared by the HTTP, Gin, Echo and gRPC adapters.

The Core type reads one identifying claim from the payload of a bearer JWT
without verifying it. The result is meant for log and trace attributes only
and must never be used for authorization decisions.

# Architecture

	┌─────────────────────────────────────────────┐
	│         Transport Adapters                  │
	│  (HTTP, gRPC, Gin, Echo - Framework Specific)│
	└────────────────┬────────────────────────────┘
	                 │ Authorization value
	                 ▼
	┌─────────────────────────────────────────────┐
	│          Core Engine (THIS PACKAGE)         │
	│  • Bearer pattern match                     │
	│  • Base64URL payload decoding               │
	│  • JSON object decoding (ClaimsDecoder)     │
	│  • Ordered claim name fallback              │
	└─────────────────────────────────────────────┘

# Pipeline

Each stage either hands a value to the next one or stops with a sentinel
error:

	ErrAuthorizationMissing  no Authorization value
	ErrMalformedToken        not "Bearer " + header.payload.signature
	ErrPayloadEncoding       payload is not Base64URL
	ErrPayloadJSON           payload is not UTF-8 JSON with an object root
	ErrClaimNotFound         no configured claim holds a string

# Basic Usage

	c, err := core.New(core.WithClaimNames("email", "sub"))
	if err != nil {
	    log.Fatal(err)
	}

	subject, err := c.Claim(r.Header.Get("Authorization"))
	if err != nil {
	    // No attribute for this request.
	}

Claims present with a non-string type (numbers, objects, arrays, booleans,
null) are skipped and the next configured name is tried.
*/
package core

/*
Package jwtattributes adds the identity carried by a bearer JWT to the logs
and traces of HTTP exchanges.

The token is decoded but NOT verified. The extracted claim is a log and trace
attribute only and must never drive an authorization decision; use a
validating middleware for that.

The package follows the Core-Adapter pattern: package core owns the
transport-agnostic claim pipeline and this package adapts it to net/http.
Gin, Echo and gRPC adapters live under framework/ and integrations/.

# Quick Start

	import (
	    "github.com/auth0/go-jwt-attributes"
	    "github.com/sirupsen/logrus"
	)

	func main() {
	    middleware, err := jwtattributes.New(
	        jwtattributes.WithLogger(jwtattributes.NewLogrusLogger(logrus.StandardLogger())),
	    )
	    if err != nil {
	        log.Fatal(err)
	    }

	    http.Handle("/api/", middleware.Handler(apiHandler))
	    http.ListenAndServe(":8080", nil)
	}

Every request served produces one entry such as:

	level=info msg="http exchange" direction=inbound method=GET status=200 subject=alice ...

# Choosing the claim

By default the "sub" claim is stored under the "subject" key. Claim names are
tried in order and the first one holding a JSON string wins:

	extractor, err := jwtattributes.NewJWTClaimExtractor(
	    jwtattributes.WithClaimNames("email", "sub"),
	    jwtattributes.WithClaimKey("principal"),
	)

	middleware, err := jwtattributes.New(
	    jwtattributes.WithExtractor(extractor),
	)

Several extractors can be combined with CompositeExtractor.

# Failure Handling

Extraction never fails visibly. A missing header, a value that is not
"Bearer header.payload.signature", a payload that is not Base64URL encoded
UTF-8 JSON with an object root, or a payload without a matching string claim
all produce empty Attributes and the request proceeds unchanged.

# Accessing Attributes

	func apiHandler(w http.ResponseWriter, r *http.Request) {
	    attrs, err := jwtattributes.GetAttributes(r.Context())
	    if err == nil {
	        fmt.Println(attrs["subject"])
	    }
	}

# Outbound Requests

	client := &http.Client{Transport: middleware.RoundTripper(http.DefaultTransport)}

# Observability

  - WithTracer starts a span per exchange; otherwise attributes are added to
    the span already in the request context
  - WithMetrics counts extractions by direction and result and observes
    exchange durations
*/
package jwtattributes

package grpc

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/grpc/metadata"
)

// requestFromMetadata builds the request an HTTP extractor expects from gRPC
// metadata. gRPC lowercases keys; they are canonicalized so that
// http.Header lookups behave as for HTTP/1 requests. Binary ("-bin") entries
// are not text and are dropped.
func requestFromMetadata(ctx context.Context, md metadata.MD, fullMethod string) *http.Request {
	header := make(http.Header, len(md))
	for key, values := range md {
		if strings.HasSuffix(key, "-bin") {
			continue
		}
		canonical := http.CanonicalHeaderKey(key)
		header[canonical] = append(header[canonical], values...)
	}

	r := &http.Request{
		Method:     http.MethodPost,
		URL:        &url.URL{Path: fullMethod},
		Proto:      "HTTP/2.0",
		ProtoMajor: 2,
		Header:     header,
		RequestURI: fullMethod,
	}
	return r.WithContext(ctx)
}

// incomingRequest adapts the metadata of a server call.
func incomingRequest(ctx context.Context, fullMethod string) *http.Request {
	md, _ := metadata.FromIncomingContext(ctx)
	return requestFromMetadata(ctx, md, fullMethod)
}

// outgoingRequest adapts the metadata of a client call.
func outgoingRequest(ctx context.Context, fullMethod string) *http.Request {
	md, _ := metadata.FromOutgoingContext(ctx)
	return requestFromMetadata(ctx, md, fullMethod)
}

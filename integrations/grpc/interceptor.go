package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	jwtattributes "github.com/auth0/go-jwt-attributes"
)

// Interceptor attaches the attributes extracted from call metadata to the
// call context and logs every call.
type Interceptor struct {
	extractor       jwtattributes.RequestAttributesExtractor
	excludedMethods map[string]bool
	logger          Logger
}

// New creates a new gRPC interceptor with the provided options.
func New(opts ...Option) (*Interceptor, error) {
	interceptor := &Interceptor{
		excludedMethods: make(map[string]bool),
	}

	for _, opt := range opts {
		if err := opt(interceptor); err != nil {
			return nil, err
		}
	}

	if interceptor.extractor == nil {
		extractor, err := jwtattributes.NewJWTClaimExtractor()
		if err != nil {
			return nil, err
		}
		interceptor.extractor = extractor
	}

	return interceptor, nil
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that makes the
// attributes available through jwtattributes.GetAttributes in the handler.
func (i *Interceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if i.skip(info.FullMethod) {
			return handler(ctx, req)
		}

		attrs := i.extractor.Extract(incomingRequest(ctx, info.FullMethod))

		start := time.Now()
		resp, err := handler(jwtattributes.SetAttributes(ctx, attrs), req)
		i.logCall("inbound", info.FullMethod, start, err, attrs)

		return resp, err
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that makes
// the attributes available in the stream context.
func (i *Interceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if i.skip(info.FullMethod) {
			return handler(srv, ss)
		}

		attrs := i.extractor.Extract(incomingRequest(ss.Context(), info.FullMethod))

		wrappedStream := &wrappedServerStream{
			ServerStream: ss,
			ctx:          jwtattributes.SetAttributes(ss.Context(), attrs),
		}

		start := time.Now()
		err := handler(srv, wrappedStream)
		i.logCall("inbound", info.FullMethod, start, err, attrs)

		return err
	}
}

// UnaryClientInterceptor returns a grpc.UnaryClientInterceptor that logs
// outgoing calls with the attributes extracted from their outgoing metadata.
func (i *Interceptor) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if i.skip(method) {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		attrs := i.extractor.Extract(outgoingRequest(ctx, method))

		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		i.logCall("outbound", method, start, err, attrs)

		return err
	}
}

func (i *Interceptor) skip(method string) bool {
	if !i.excludedMethods[method] {
		return false
	}
	if i.logger != nil {
		i.logger.Debug("skipping attribute extraction for excluded method",
			"method", method)
	}
	return true
}

func (i *Interceptor) logCall(direction, method string, start time.Time, err error, attrs jwtattributes.Attributes) {
	if i.logger == nil {
		return
	}
	args := append([]any{
		"direction", direction,
		"method", method,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	}, attrs.Args()...)

	if err != nil {
		i.logger.Warn("grpc call failed", append(args, "error", err)...)
		return
	}
	i.logger.Info("grpc call", args...)
}

// wrappedServerStream wraps grpc.ServerStream with a custom context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the wrapped context with the extracted attributes.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

// Package grpc provides gRPC interceptors that add the identity carried by a
// bearer JWT to the context and logs of every call.
//
// The token is read from the "authorization" metadata entry and is NOT
// verified. Calls are never rejected: a missing or malformed token only means
// the call carries no attributes.
//
// # Basic Usage
//
//	import (
//	    "log"
//	    "net"
//
//	    "github.com/sirupsen/logrus"
//	    jwtattributes "github.com/auth0/go-jwt-attributes"
//	    jwtgrpc "github.com/auth0/go-jwt-attributes/integrations/grpc"
//	    "google.golang.org/grpc"
//	)
//
//	func main() {
//	    interceptor, err := jwtgrpc.New(
//	        jwtgrpc.WithLogger(jwtattributes.NewLogrusLogger(logrus.StandardLogger())),
//	        jwtgrpc.WithExcludedMethods("/grpc.health.v1.Health/Check"),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    server := grpc.NewServer(
//	        grpc.UnaryInterceptor(interceptor.UnaryServerInterceptor()),
//	        grpc.StreamInterceptor(interceptor.StreamServerInterceptor()),
//	    )
//
//	    listener, _ := net.Listen("tcp", ":50051")
//	    server.Serve(listener)
//	}
//
// # Accessing Attributes
//
//	func (s *server) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.User, error) {
//	    attrs, err := jwtattributes.GetAttributes(ctx)
//	    if err == nil {
//	        log.Printf("called by %v", attrs["subject"])
//	    }
//	    ...
//	}
//
// # Client Calls
//
// UnaryClientInterceptor logs outgoing calls with the attributes found in
// their outgoing metadata:
//
//	conn, err := grpc.NewClient(target,
//	    grpc.WithUnaryInterceptor(interceptor.UnaryClientInterceptor()),
//	)
//
// # Extractors
//
// Any jwtattributes.RequestAttributesExtractor works. It receives a synthetic
// *http.Request whose headers are the call metadata (canonicalized, binary
// entries dropped) and whose URL path is the full method name.
package grpc

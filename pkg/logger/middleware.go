package logger

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// RequestIDHeader is the header (and gRPC metadata key) carrying a caller-supplied request ID
const RequestIDHeader = "X-Request-ID"

// NewRequestID returns a fresh request ID
func NewRequestID() string {
	return uuid.NewString()
}

// RequestIDInterceptor is a gRPC interceptor that adds a request ID to the context.
// An incoming x-request-id metadata value is reused when present.
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(RequestIDHeader); len(v) > 0 {
				requestID = v[0]
			}
		}
		if requestID == "" {
			requestID = NewRequestID()
		}

		return handler(WithRequestID(ctx, requestID), req)
	}
}

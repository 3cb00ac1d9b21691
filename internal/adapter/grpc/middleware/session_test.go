package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"trading-dashboard/internal/domain/session"
)

type stubVerifier struct {
	err error
}

func (s stubVerifier) Verify(_ context.Context, token string) (*session.Session, error) {
	switch {
	case s.err != nil:
		return nil, s.err
	case token == "":
		return nil, session.ErrNoSession
	case token == "good":
		return &session.Session{UserID: "u1", Email: "jane@x.com"}, nil
	default:
		return nil, session.ErrInvalidSession
	}
}

// mockHandler echoes the email of the session it was called with
func mockHandler(ctx context.Context, _ any) (any, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, errors.New("no session in context")
	}
	return sess.Email, nil
}

var info = &grpc.UnaryServerInfo{FullMethod: "/dashboard.v1.UserService/LookupUser"}

func TestSessionInterceptor(t *testing.T) {
	interceptor := SessionInterceptor(stubVerifier{}, zaptest.NewLogger(t))

	tests := []struct {
		name     string
		md       metadata.MD
		wantCode codes.Code
	}{
		{"valid bearer", metadata.Pairs("authorization", "Bearer good"), codes.OK},
		{"missing metadata", nil, codes.Unauthenticated},
		{"wrong scheme", metadata.Pairs("authorization", "Basic good"), codes.Unauthenticated},
		{"unknown token", metadata.Pairs("authorization", "Bearer nope"), codes.Unauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.md != nil {
				ctx = metadata.NewIncomingContext(ctx, tt.md)
			}

			resp, err := interceptor(ctx, nil, info, mockHandler)

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				require.NoError(t, err)
				assert.Equal(t, "jane@x.com", resp)
				return
			}
			assert.Equal(t, "Unauthorized", status.Convert(err).Message())
		})
	}
}

func TestSessionInterceptor_StoreUnavailable(t *testing.T) {
	interceptor := SessionInterceptor(stubVerifier{err: errors.New("redis down")}, zaptest.NewLogger(t))
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer good"))

	_, err := interceptor(ctx, nil, info, mockHandler)

	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "Internal server error", status.Convert(err).Message())
}

package middleware

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	sessionadapter "trading-dashboard/internal/adapter/session"
	"trading-dashboard/internal/domain/session"
	apperrors "trading-dashboard/pkg/errors"
	"trading-dashboard/pkg/logger"
)

// SessionInterceptor verifies the bearer token in the "authorization"
// metadata before any handler runs and stores the session in the context.
func SessionInterceptor(verifier session.Verifier, log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		var token string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("authorization"); len(values) > 0 {
				token = sessionadapter.BearerToken(values[0])
			}
		}

		sess, err := verifier.Verify(ctx, token)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) || errors.Is(err, session.ErrInvalidSession) {
				return nil, apperrors.ToGRPC(apperrors.ErrUnauthorized)
			}
			logger.WithContext(ctx, log).Error("session verification failed",
				zap.String("method", info.FullMethod),
				zap.Error(err),
			)
			return nil, apperrors.ToGRPC(err)
		}

		ctx = session.NewContext(ctx, sess)
		ctx = logger.WithSessionUser(ctx, sess.UserID)
		return handler(ctx, req)
	}
}

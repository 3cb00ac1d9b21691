package server

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"trading-dashboard/cmd/api/di"
	grpcadapter "trading-dashboard/internal/adapter/grpc"
	"trading-dashboard/internal/adapter/grpc/middleware"
	"trading-dashboard/pkg/logger"
)

// SetupGRPC creates and configures the gRPC server
func SetupGRPC(c *di.Container, l *zap.Logger) *grpc.Server {
	// Request ID first so the session interceptor logs with it
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RequestIDInterceptor(),
			middleware.SessionInterceptor(c.Verifier, l),
		),
	)
	grpcadapter.RegisterUserServiceServer(grpcServer, c.UserService)

	return grpcServer
}

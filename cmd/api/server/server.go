package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"trading-dashboard/cmd/api/di"
	"trading-dashboard/internal/config"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	GRPC   *grpc.Server
	HTTP   *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	s := &Server{
		Config: cfg,
		Logger: l,
		GRPC:   SetupGRPC(c, l),
	}
	s.HTTP = SetupGinServer(c, s.httpAddress(), l)
	return s
}

// Start runs the gRPC and HTTP servers and returns when the first one
// stops. A graceful shutdown of either server is not an error.
func (s *Server) Start() error {
	errCh := make(chan error, 2)

	go func() {
		if err := s.startGRPC(); err != nil {
			errCh <- fmt.Errorf("failed to start gRPC server: %w", err)
			return
		}
		errCh <- nil
	}()

	go func() {
		s.Logger.Info("HTTP server running", zap.String("address", s.httpAddress()))
		if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
		errCh <- nil
	}()

	return <-errCh
}

// startGRPC starts the gRPC server
func (s *Server) startGRPC() error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(context.Background(), "tcp", s.grpcAddress())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.Logger.Info("gRPC server running", zap.String("address", s.grpcAddress()))
	return s.GRPC.Serve(lis)
}

// grpcAddress returns the gRPC server address
func (s *Server) grpcAddress() string {
	return ":" + s.Config.App.GRPCPort
}

// httpAddress returns the HTTP server address
func (s *Server) httpAddress() string {
	return ":" + s.Config.App.HTTPPort
}

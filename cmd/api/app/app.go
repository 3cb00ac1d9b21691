package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"go.uber.org/zap"

	"trading-dashboard/cmd/api/di"
	"trading-dashboard/cmd/api/server"
	"trading-dashboard/internal/config"
	"trading-dashboard/pkg/logger"
)

// App owns the dashboard process: configuration, logger, the dependency
// container and the HTTP and gRPC servers built from it.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Server    *server.Server
	Container *di.Container
}

// New loads configuration from CONFIG_PATH (default ".") and wires the process.
func New() (*App, error) {
	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(logger.Config{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		OutputPath:  cfg.Logger.OutputPath,
		Sampling:    cfg.Logger.EnableSampling,
		Service:     cfg.Logger.ServiceName,
		Version:     cfg.Logger.ServiceVersion,
		Environment: cfg.App.Environment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container, err := di.NewContainer(cfg, l)
	if err != nil {
		l.Error("failed to wire dependencies", zap.Error(err))
		_ = l.Sync()
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	return &App{
		Config:    cfg,
		Logger:    l,
		Server:    server.New(cfg, l, container),
		Container: container,
	}, nil
}

// Run serves until ctx is cancelled or a server stops, then shuts everything
// down. A server failure still goes through shutdown so the store pools close.
func (a *App) Run(ctx context.Context) error {
	a.logStartup()

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.Logger.Error("server panic", zap.Any("panic", r), zap.Stack("stack"))
				errCh <- fmt.Errorf("server panic: %v", r)
			}
		}()
		errCh <- a.Server.Start()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("shutdown requested")
	case runErr = <-errCh:
		if runErr != nil {
			a.Logger.Error("server stopped", zap.Error(runErr))
		}
	}

	return errors.Join(runErr, a.shutdown())
}

func (a *App) logStartup() {
	cfg := a.Config
	a.Logger.Info("starting trading dashboard",
		zap.String("http_addr", ":"+cfg.App.HTTPPort),
		zap.String("grpc_addr", ":"+cfg.App.GRPCPort),
		zap.String("session_provider", cfg.Session.Provider),
		zap.String("session_cookie", cfg.Session.CookieName),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)
	a.Logger.Info("dashboard settings",
		zap.Duration("fetch_timeout", cfg.Dashboard.FetchTimeout),
		zap.Duration("render_wait", cfg.Dashboard.RenderWait),
		zap.String("chart_symbol", cfg.Dashboard.ChartSymbol),
		zap.String("default_timeframe", cfg.Dashboard.DefaultTimeframe),
		zap.String("placeholder_avatar", cfg.Dashboard.PlaceholderAvatar),
	)
}

// shutdown stops intake on both servers, drains them within
// SHUTDOWN_TIMEOUT_SECONDS, then releases the store connections.
func (a *App) shutdown() error {
	timeout := time.Duration(a.Config.App.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.Logger.Info("shutting down", zap.Duration("timeout", timeout))

	var errs []error
	if a.Server.HTTP != nil {
		if err := a.Server.HTTP.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if a.Server.GRPC != nil {
		a.stopGRPC(ctx)
	}
	if a.Container != nil {
		if err := a.Container.Close(); err != nil {
			errs = append(errs, fmt.Errorf("container close: %w", err))
		}
	}

	a.Logger.Info("shutdown complete", zap.Int("errors", len(errs)))

	// stdout and stderr report EINVAL or ENOTTY on sync
	if err := a.Logger.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		errs = append(errs, fmt.Errorf("logger sync: %w", err))
	}

	return errors.Join(errs...)
}

// stopGRPC lets in-flight lookups finish, forcing the stop once ctx expires.
func (a *App) stopGRPC(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		a.Server.GRPC.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		a.Logger.Warn("gRPC drain timed out, forcing stop")
		a.Server.GRPC.Stop()
		<-done
	}
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}

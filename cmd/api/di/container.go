package di

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trading-dashboard/cmd/api/infrastructure"
	"trading-dashboard/internal/adapter/db/postgres"
	ginhandler "trading-dashboard/internal/adapter/gin/handler"
	ginmiddleware "trading-dashboard/internal/adapter/gin/middleware"
	grpcadapter "trading-dashboard/internal/adapter/grpc"
	"trading-dashboard/internal/config"
	"trading-dashboard/internal/domain/session"
	dashboardusecase "trading-dashboard/internal/usecase/dashboard"
	"trading-dashboard/internal/usecase/user"
	redisclient "trading-dashboard/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client // nil unless sessions live in Redis
	Verifier    session.Verifier
	UserUC      user.Usecase
	DashboardUC *dashboardusecase.Usecase

	UserHandler      *ginhandler.UserHandler
	DashboardHandler *ginhandler.DashboardHandler
	UserService      *grpcadapter.UserService

	Registry *prometheus.Registry
	Metrics  *ginmiddleware.Metrics // nil when metrics are disabled
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (_ *Container, err error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	c := &Container{Config: cfg, Logger: l}
	defer func() {
		if err != nil {
			_ = c.Close()
		}
	}()

	// Initialize database
	c.DB, err = infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis client only for the Redis session provider
	if cfg.Session.Provider == config.SessionProviderRedis {
		c.RedisClient, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
	}

	c.Verifier, err = infrastructure.NewSessionVerifier(cfg, c.RedisClient, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session verifier: %w", err)
	}

	// Initialize repository and use cases
	repo := postgres.NewUserRepoPG(c.DB, l)
	c.UserUC = user.New(repo, l)
	c.DashboardUC = dashboardusecase.New(c.UserUC, dashboardusecase.Config{
		FetchTimeout:      cfg.Dashboard.FetchTimeout,
		RenderWait:        cfg.Dashboard.RenderWait,
		ChartSymbol:       cfg.Dashboard.ChartSymbol,
		DefaultTimeframe:  cfg.Dashboard.DefaultTimeframe,
		PlaceholderAvatar: cfg.Dashboard.PlaceholderAvatar,
	}, l)

	// Initialize transport adapters
	c.UserHandler = ginhandler.NewUserHandler(c.UserUC, l)
	c.DashboardHandler = ginhandler.NewDashboardHandler(c.DashboardUC, l)
	c.UserService = grpcadapter.NewUserService(c.UserUC, l)

	// Initialize metrics
	if cfg.Metrics.Enabled {
		c.Registry = prometheus.NewRegistry()
		c.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		c.Metrics, err = ginmiddleware.NewMetrics(c.Registry)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	return c, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}

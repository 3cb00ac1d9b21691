package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trading-dashboard/cmd/api/di"
	ginrouter "trading-dashboard/internal/adapter/gin/router"
)

// SetupGinServer creates and configures the Gin HTTP server
func SetupGinServer(c *di.Container, ginAddr string, l *zap.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(ginrouter.Options{
		UserHandler:      c.UserHandler,
		DashboardHandler: c.DashboardHandler,
		Verifier:         c.Verifier,
		CookieName:       c.Config.Session.CookieName,
		Metrics:          c.Metrics,
		Gatherer:         c.Registry,
		MetricsPath:      c.Config.Metrics.Path,
		ServiceName:      c.Config.Logger.ServiceName,
		Log:              l,
	})

	l.Info("Gin HTTP server configured", zap.String("address", ginAddr))
	l.Info("Swagger UI available at", zap.String("url", "http://localhost"+ginAddr+"/swagger/index.html"))

	return &http.Server{
		Addr:              ginAddr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

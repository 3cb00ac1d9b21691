package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"trading-dashboard/api"
	"trading-dashboard/internal/adapter/gin/handler"
	"trading-dashboard/internal/adapter/gin/middleware"
	"trading-dashboard/internal/adapter/gin/view"
	"trading-dashboard/internal/domain/session"
)

// OpenAPIPath serves the embedded OpenAPI document.
const OpenAPIPath = "/openapi/dashboard.json"

// Options carries everything the router wires together.
type Options struct {
	UserHandler      *handler.UserHandler
	DashboardHandler *handler.DashboardHandler
	Verifier         session.Verifier
	CookieName       string

	// MetricsPath and Gatherer expose Prometheus metrics when Metrics is set.
	Metrics     *middleware.Metrics
	Gatherer    prometheus.Gatherer
	MetricsPath string

	ServiceName string
	Log         *zap.Logger
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(view.Templates())

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(opts.Log))
	router.Use(middleware.Logger(opts.Log))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Handler())
		router.GET(opts.MetricsPath, gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": opts.ServiceName,
		})
	})

	// API docs
	router.GET(OpenAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", api.OpenAPI)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(OpenAPIPath))))

	// Session-gated routes
	authed := router.Group("", middleware.RequireSession(opts.Verifier, opts.CookieName, opts.Log))
	{
		authed.GET("/api/user", opts.UserHandler.GetUser)
		authed.GET("/api/dashboard", opts.DashboardHandler.GetDashboard)
		authed.GET("/dashboard", opts.DashboardHandler.RenderDashboard)
	}

	return router
}

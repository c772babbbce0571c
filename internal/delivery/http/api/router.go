package api

import (
	"log/slog"

	"rsvp-backend/config"
	"rsvp-backend/internal/delivery/http/middleware"
	"rsvp-backend/internal/domain"
	"rsvp-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	RSVPUC   domain.RSVPUsecase
	HealthUC domain.HealthUsecase
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer // served on /metrics when set
	Config   *config.Config
	Logger   *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.ErrorHandler(deps.Logger))

	NewHealthHandler(r, deps.HealthUC)

	api := r.Group("/api")
	NewRSVPHandler(api, deps.RSVPUC)

	if deps.Config.MetricsEnabled && deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger
	if deps.Config.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rsvp-backend/config"
	_ "rsvp-backend/docs" // Important for Swagger
	"rsvp-backend/internal/delivery/http/api"
	"rsvp-backend/internal/usecase"
	"rsvp-backend/pkg/logger"
	"rsvp-backend/pkg/metrics"
	"rsvp-backend/pkg/notion"
	"rsvp-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           RSVP Backend API
// @version         1.0
// @description     Accepts RSVP form submissions and stores each guest in a Notion database.
// @host            localhost:5001
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	logger.Log.Info("Starting RSVP backend", "port", cfg.Port)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 3. Setup Record Store (Notion)
	store := notion.NewClient(cfg.NotionAPIKey)

	// 4. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// 5. Setup UseCases
	healthUC := usecase.NewHealthUsecase(cfg, store, logger.Log)
	rsvpUC := usecase.NewRSVPUsecase(cfg, store, validation.New(), appMetrics, logger.Log)

	// 6. Startup connectivity check. A failure is logged and the server keeps
	// running; /health reports the degraded state.
	checkCtx, cancelCheck := context.WithTimeout(context.Background(), 10*time.Second)
	if status := healthUC.Check(checkCtx); !status.Healthy() {
		logger.Log.Error("Failed to initialize Notion", "error", status.Error)
	} else {
		logger.Log.Info("Successfully connected to Notion database")
	}
	cancelCheck()

	// 7. Setup Router
	router := api.NewRouter(api.RouterDeps{
		RSVPUC:   rsvpUC,
		HealthUC: healthUC,
		Metrics:  appMetrics,
		Gatherer: registry,
		Config:   cfg,
		Logger:   logger.Log,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

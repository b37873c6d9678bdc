// Package main is the entry point for the resin calculator HTTP API.
// This single service computes resin volumes, mix splits and product
// recommendations for rectangular and circular molds.
//
// 12-Factor App compilance:
//   - III. Config: Configuration via environment variables
//   - VI. Processes: Stateless processes
//   - VII. Port Binding: Self-contained HTTP server
//   - IX. Disposability: Graceful shutdown
//   - XI. Logs: Structured logging to stdout
//
// Usage:
//
//	go run ./cmd/resin-api
//
// Environment Variables:
//
//	RESIN_ENVIRONMENT - Deployment environment (development, staging, production)
//	RESIN_SERVER_PORT - HTTP server port (default: 8080)
//	RESIN_CALCULATOR_MARGIN_RATE - Safety margin (default: 0.05)
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hapkiduki/resin-calc/internal/application/port"
	"github.com/hapkiduki/resin-calc/internal/application/service"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/catalog"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/config"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/logging"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/metrics"
	httpapi "github.com/hapkiduki/resin-calc/internal/interfaces/http"
	"github.com/hapkiduki/resin-calc/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

// startTime tracks when the server started for uptime calculations
var startTime = time.Now()

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log := logger.MustNew(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.IsDevelopment(),
	})
	defer func() { _ = log.Sync() }()

	log.Info("Starting Resin Calculator API",
		"version", version,
		"environment", cfg.App.Environment,
	)

	// Create context that listens for shutdowns signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpLog := log.Named("http")

	// Product catalog
	products, err := catalog.NewFromConfig(cfg.Catalog)
	if err != nil {
		log.Fatal("Failed to build product catalog", "error", err)
	}
	count, _ := products.Count(ctx)
	log.Info("Product catalog loaded", "products", count)

	// Metrics
	var (
		recorder       port.Metrics = port.NopMetrics{}
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheus(cfg.Metrics.Namespace)
		recorder = prom
		metricsHandler = prom.Handler()
	}

	// Calculator service; config.Load already validated both defaults
	margin, _ := cfg.Calculator.Margin()
	ratio, _ := cfg.Calculator.MixRatio()
	calculator := service.NewCalculatorService(products, logging.NewAdapter(log.Named("calculator")), recorder, service.Defaults{
		MarginRate: margin,
		MixRatio:   ratio,
	})

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Config:         cfg,
		Logger:         logging.NewAdapter(httpLog),
		Metrics:        recorder,
		MetricsHandler: metricsHandler,
		Calculator:     calculator,
		Version:        version,
		StartTime:      startTime,
	})

	// ============================================================================
	// HTTP server
	// ============================================================================

	addr := cfg.Address()
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     zap.NewStdLog(httpLog.ZapLogger()),
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.Info("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server shutdown complete")
}

// Package http assembles the chi router of the resin calculator API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/hapkiduki/resin-calc/internal/application/port"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/config"
	"github.com/hapkiduki/resin-calc/internal/interfaces/http/handler"
	"github.com/hapkiduki/resin-calc/internal/interfaces/http/middleware"
)

// RouterDeps are the collaborators the router wires together.
type RouterDeps struct {
	Config         *config.Config
	Logger         port.Logger
	Metrics        port.Metrics
	MetricsHandler http.Handler
	Calculator     handler.Calculator
	Version        string
	StartTime      time.Time
}

// NewRouter builds the HTTP handler with the full middleware stack and routes.
//
// Parameters:
//   - deps: router collaborators
//
// Returns:
//   - http.Handler: the root handler
func NewRouter(deps RouterDeps) http.Handler {
	cfg := deps.Config
	metrics := deps.Metrics
	if metrics == nil {
		metrics = port.NopMetrics{}
	}

	r := chi.NewRouter()

	// ============================================================================
	// Middleware stack
	// ============================================================================
	// Order matters! Middleware is executed in the order added.

	// 1. Real IP extraction (for rate limiting and logging)
	r.Use(middleware.RealIP)

	// 2. Request ID generation/propagation
	r.Use(middleware.RequestID)

	// 3. Logging (after Request ID so it's included in logs)
	r.Use(middleware.Logger(deps.Logger))

	// 4. Panic recovery
	r.Use(middleware.Recoverer(deps.Logger))

	// 5. Metrics
	r.Use(middleware.Metrics(metrics))

	// 6. Request timeout
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// 7. CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-API-Version"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 8. Rate limiting
	if cfg.RateLimit.Enabled {
		limits := middleware.DefaultRateLimiterConfig()
		limits.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		limits.Burst = cfg.RateLimit.Burst
		r.Use(middleware.RateLimiter(limits))
	}

	// 9. Security headers
	r.Use(middleware.SecureHeaders)

	// 10. API version header
	r.Use(middleware.APIVersion(deps.Version))

	// ============================================================================
	// Routes
	// ============================================================================

	health := handler.NewHealthHandler(deps.Version, deps.StartTime, map[string]handler.ReadinessChecker{
		"catalog": deps.Calculator,
	})
	calculations := handler.NewCalculationHandler(deps.Calculator, deps.Logger, deps.Version)

	// Health check endpoints (no auth required)
	r.Get("/health", health.Health)
	r.Get("/ready", health.Ready)

	if cfg.Metrics.Enabled && deps.MetricsHandler != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, deps.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Content-Type enforcement and body limit for the JSON API only
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.MaxBodySize(cfg.Server.MaxRequestSize))

		r.Post("/calculations", calculations.Calculate)
		r.Get("/products", calculations.ListProducts)
		r.Get("/products/{sku}", calculations.GetProduct)
	})

	// 404 handler
	r.NotFound(handler.NotFound)

	// 405 handler
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

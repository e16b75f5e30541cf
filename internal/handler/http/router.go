package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klueko/sheos/pkg/health"
	"github.com/klueko/sheos/pkg/httputil"
	"github.com/klueko/sheos/pkg/middleware"
	"github.com/klueko/sheos/pkg/pagination"
)

// RouterConfig carries the HTTP-facing settings of the service.
type RouterConfig struct {
	ServiceName       string
	AllowedOrigins    []string
	CacheMaxAge       int
	PprofAllowedCIDRs []string
	RateLimitRPS      int
	RateLimitBurst    int
	CatalogPaging     pagination.Options
	LegacyPaging      pagination.Options
}

// NewRouter creates a chi router with the catalog routes, their /api aliases
// and the operational endpoints registered.
func NewRouter(svc CatalogService, healthHandler *health.Handler, cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		ExposedHeaders: []string{middleware.CorrelationIDHeader},
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{Error: "Method not allowed"})
	})

	// Operational endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())
	if len(cfg.PprofAllowedCIDRs) > 0 {
		middleware.RegisterPprof(r, cfg.PprofAllowedCIDRs, logger)
	}

	catalog := NewCatalogHandler(svc, cfg.CatalogPaging, logger)
	legacy := NewLegacyHandler(svc, cfg.LegacyPaging, logger)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
		r.Use(middleware.CacheControl(cfg.CacheMaxAge))

		r.Get("/catalog", catalog.ListCatalog)
		r.Get("/catalog/{slug}", catalog.GetProduct)
		r.Get("/legacy-listing", legacy.List)

		// Storefront paths the frontend already calls.
		r.Get("/api/products", catalog.ListCatalog)
		r.Get("/api/products/{slug}", catalog.GetProduct)
		r.Get("/api/asphaltgold", legacy.List)
	})

	return r
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/uctoportal/backend/internal/adapter/http/handler"
	"github.com/uctoportal/backend/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CompanyHandler   *handler.CompanyHandler
	AccountHandler   *handler.AccountHandler
	StatementHandler *handler.StatementHandler
	ImportHandler    *handler.ImportHandler
	HealthHandler    *handler.HealthHandler
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	logging := middleware.NewLoggingMiddleware(cfg.Logger)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(logging.Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", cfg.CompanyHandler.List)
			r.Route("/{ico}", func(r chi.Router) {
				r.Get("/", cfg.CompanyHandler.Get)
				r.Get("/accounts", cfg.AccountHandler.List)
				r.Get("/statement", cfg.StatementHandler.Get)
				r.Get("/imports", cfg.ImportHandler.ListByCompany)
				r.Post("/imports", cfg.ImportHandler.Create)
			})
		})
	})

	return r
}

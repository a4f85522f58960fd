package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dogweb/internal/config"
	"dogweb/internal/infrastructure/http/handlers"
	"dogweb/internal/infrastructure/logger"
	"dogweb/internal/infrastructure/metrics"
	"dogweb/internal/infrastructure/sentry"
)

type Server struct {
	cfg          *config.Config
	router       *chi.Mux
	server       *http.Server
	entryHandler *handlers.EntryHandler
	metrics      metrics.Metrics
	reporter     sentry.Reporter
	logger       logger.Logger
}

func NewServer(
	cfg *config.Config,
	entryHandler *handlers.EntryHandler,
	metrics metrics.Metrics,
	reporter sentry.Reporter,
	logger logger.Logger,
) *Server {
	if reporter == nil {
		reporter = sentry.NewNoopReporter()
	}

	s := &Server{
		cfg:          cfg,
		entryHandler: entryHandler,
		metrics:      metrics,
		reporter:     reporter,
		logger:       logger,
	}

	s.setupRouter()

	s.server = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      s.router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	return s
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RecoveryMiddleware(s.reporter, s.logger))
	r.Use(LoggingMiddleware(s.logger))
	r.Use(MetricsMiddleware(s.metrics))

	// Служебные маршруты
	r.Get("/health", s.healthCheck)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get("/", s.entryHandler.GetName)

	s.router = r
}

func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "address", s.cfg.Server.Address)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) Router() *chi.Mux {
	return s.router
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"dogweb/internal/config"
	httpInfra "dogweb/internal/infrastructure/http"
	"dogweb/internal/infrastructure/http/handlers"
	"dogweb/internal/infrastructure/logger"
	"dogweb/internal/infrastructure/metrics"
	"dogweb/internal/infrastructure/sentry"
	"dogweb/internal/infrastructure/storage"
	"dogweb/internal/infrastructure/storage/memory"
	"dogweb/internal/infrastructure/storage/postgres"
	"dogweb/internal/usecase"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	if err := run(); err != nil {
		log.Printf("dogweb: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appLogger, err := logger.New(cfg.LogBackend, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	if zl, ok := appLogger.(*logger.ZapLogger); ok {
		defer zl.Sync()
	}
	appLogger.Info("Starting dogweb", "version", Version)

	metricsCollector := metrics.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	var reporter sentry.Reporter = sentry.NewNoopReporter()
	if cfg.Sentry.DSN != "" {
		ravenReporter, err := sentry.NewRavenReporter(cfg.Sentry.DSN, Version)
		if err != nil {
			appLogger.Error("Failed to configure error reporting", "error", err)
			return err
		}
		defer ravenReporter.Close()
		reporter = ravenReporter
		appLogger.Info("Error reporting enabled")
	}

	store, err := openStore(cfg)
	if err != nil {
		appLogger.Error("Failed to open storage", "type", cfg.Storage.Type, "error", err)
		return err
	}

	// Без таблицы и сидовой строки сервис не стартует
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	err = store.Initialize(initCtx)
	cancelInit()
	if err != nil {
		appLogger.Error("Failed to initialize storage", "error", err)
		_ = store.Close()
		return err
	}
	appLogger.Info("Storage initialized", "type", cfg.Storage.Type)

	handle := storage.NewHandle(store)
	defer handle.Close()

	emitter := metrics.NewEmitter(cfg.Statsd, appLogger)
	defer emitter.Close()

	entryService := usecase.NewEntryService(handle, emitter, metricsCollector, reporter, appLogger)
	entryHandler := handlers.NewEntryHandler(entryService, appLogger)

	srv := httpInfra.NewServer(cfg, entryHandler, metricsCollector, reporter, appLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	return serve(srv, quit, time.Duration(cfg.Server.ShutdownTimeout)*time.Second, appLogger)
}

// serve runs srv until a signal arrives on quit or the listener fails.
// A listener failure is returned so the process exits non-zero.
func serve(srv *httpInfra.Server, quit <-chan os.Signal, shutdownTimeout time.Duration, appLogger logger.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Server error", "error", err)
		return fmt.Errorf("server: %w", err)
	}

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
	}

	appLogger.Info("Server exited")
	return nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Type {
	case config.StoragePostgres:
		return postgres.NewPostgresRepository(cfg.Storage.PostgresURL)
	default:
		return memory.NewMemoryRepository(context.Background())
	}
}

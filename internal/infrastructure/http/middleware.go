package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dogweb/internal/infrastructure/logger"
	"dogweb/internal/infrastructure/metrics"
	"dogweb/internal/infrastructure/sentry"
)

func RecoveryMiddleware(reporter sentry.Reporter, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err := fmt.Errorf("panic: %v", rec)
				logger.Error("Recovered from panic",
					"error", err,
					"request_id", middleware.GetReqID(r.Context()),
				)
				reporter.Report(err, map[string]string{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				respondInternalError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func LoggingMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			duration := time.Since(start)

			logger.Debug("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.statusCode,
				"duration", duration,
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func MetricsMiddleware(metrics metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			if metrics != nil {
				duration := time.Since(start).Seconds()
				path := routePattern(r)
				metrics.IncHTTPRequests(r.Method, path, rw.statusCode)
				metrics.ObserveHTTPDuration(r.Method, path, duration)
			}
		})
	}
}

// routePattern keeps the path label bounded: unmatched paths share one value.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger for the given backend. An empty backend selects slog.
func New(backend, level string) (Logger, error) {
	switch strings.ToLower(backend) {
	case "", BackendSlog:
		return NewSlogLogger(level), nil
	case BackendZap:
		return NewZapLogger(level)
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

type SlogLogger struct {
	*slog.Logger
}

func NewSlogLogger(level string) *SlogLogger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseSlogLevel(level),
	})

	return &SlogLogger{Logger: slog.New(handler)}
}

func parseSlogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

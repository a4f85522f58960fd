package logger

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{name: "default is slog", backend: ""},
		{name: "slog", backend: "slog"},
		{name: "zap", backend: "ZAP"},
		{name: "unknown", backend: "logrus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.backend, "info")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseSlogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseSlogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseSlogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("bogus"))
}

func TestNewZapLogger_InvalidLevel(t *testing.T) {
	_, err := NewZapLogger("loud")
	assert.Error(t, err)
}

func TestZapLogger_ConvertsSlogAttrs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newZapLogger(zap.New(core))

	l.Warn("Failed to emit metric",
		"metric", "web.page_views",
		slog.Any("error", errors.New("connection refused")),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Failed to emit metric", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "web.page_views", fields["metric"])
	assert.Contains(t, fields, "error")
}

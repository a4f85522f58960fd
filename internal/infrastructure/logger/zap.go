package logger

import (
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a sugared zap logger to Logger. Arguments follow the
// slog convention: alternating keys and values, or slog.Attr.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

func NewZapLogger(level string) (*ZapLogger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(os.Stdout)),
		zapLevel,
	)

	return newZapLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))), nil
}

func newZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: l.Sugar()}
}

func (l *ZapLogger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, zapArgs(args)...) }
func (l *ZapLogger) Info(msg string, args ...any)  { l.sugar.Infow(msg, zapArgs(args)...) }
func (l *ZapLogger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, zapArgs(args)...) }
func (l *ZapLogger) Error(msg string, args ...any) { l.sugar.Errorw(msg, zapArgs(args)...) }

// Sync flushes buffered entries. Call it from main before exiting.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// zapArgs converts slog.Attr values into zap fields; plain key/value pairs
// are passed through since the sugared logger understands them already.
func zapArgs(args []any) []any {
	out := make([]any, 0, len(args))
	for _, arg := range args {
		if attr, ok := arg.(slog.Attr); ok {
			out = append(out, zap.Any(attr.Key, attr.Value.Any()))
			continue
		}
		out = append(out, arg)
	}
	return out
}

// Package logger wraps a process-wide zap sugared logger behind
// context-aware helpers so call sites stay short.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var global = zap.NewNop().Sugar()

// Init replaces the global logger. Call once from main before serving.
func Init(debug bool) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	global = l.Sugar()
	return nil
}

// WithRequestID returns a context whose log lines carry the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if id, ok := ctx.Value(ctxKey{}).(string); ok {
			return global.With("request_id", id)
		}
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string) {
	fromCtx(ctx).Error(msg)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Errorf(format, args...)
}

// Fatal logs the error and exits. A nil error is ignored, which lets
// Serve(addr) be wrapped directly.
func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	fromCtx(ctx).Fatal(err.Error())
}

// Sync flushes buffered log entries.
func Sync() {
	_ = global.Sync()
}

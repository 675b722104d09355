package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	mu      sync.RWMutex
	global  = &logger{zap: zap.NewNop()}
	initted bool
)

type logger struct {
	zap *zap.Logger
}

// Init builds the global logger. It may be called once; later calls are no-ops.
func Init(level string, asJSON bool) error {
	mu.Lock()
	defer mu.Unlock()

	if initted {
		return nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: parse level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if asJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))
	global = &logger{zap: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
	initted = true

	return nil
}

// SetNopLogger silences the global logger. Used by tests.
func SetNopLogger() {
	mu.Lock()
	defer mu.Unlock()

	global = &logger{zap: zap.NewNop()}
	initted = true
}

// SetLogger replaces the global logger with z.
func SetLogger(z *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()

	global = &logger{zap: z}
	initted = true
}

func L() *logger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

func With(fields ...Field) *logger {
	return &logger{zap: L().zap.With(fields...)}
}

// WithContext stores fields that every log call made with ctx will carry.
func WithContext(ctx context.Context, fields ...Field) context.Context {
	prev, _ := ctx.Value(ctxKey{}).([]Field)
	merged := make([]Field, 0, len(prev)+len(fields))
	merged = append(merged, prev...)
	merged = append(merged, fields...)

	return context.WithValue(ctx, ctxKey{}, merged)
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zap.Debug(msg, withCtxFields(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zap.Info(msg, withCtxFields(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zap.Warn(msg, withCtxFields(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zap.Error(msg, withCtxFields(ctx, fields)...)
}

func (l *logger) Sync() error { return l.zap.Sync() }

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func withCtxFields(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}

	ctxFields, ok := ctx.Value(ctxKey{}).([]Field)
	if !ok || len(ctxFields) == 0 {
		return fields
	}

	return append(ctxFields[:len(ctxFields):len(ctxFields)], fields...)
}

// NoopLogger satisfies the small Info/Error logger interfaces used across platform packages.
type NoopLogger struct{}

func (NoopLogger) Debug(context.Context, string, ...Field) {}
func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Warn(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}

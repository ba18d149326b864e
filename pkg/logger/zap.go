// Package logger — адаптер zap под контракт ports.Logger.
package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/rentshop_orders/pkg/ctxmeta"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := FromZap(logger, isProd)
	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// FromZap оборачивает готовый *zap.Logger (удобно в тестах с observer).
func FromZap(base *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.Sugar(), isProd: isProd}
}

// withCtx добавляет к записи метаданные запроса из контекста.
func (z *ZapLogger) withCtx(ctx context.Context) *zap.SugaredLogger {
	var fields []any
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", id)
	}
	if id, ok := ctxmeta.OutletIDFromContext(ctx); ok {
		fields = append(fields, "outlet_id", id)
	}
	if id, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", id)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }

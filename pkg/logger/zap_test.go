package logger_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Gunvolt24/rentshop_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/rentshop_orders/pkg/logger"
)

func TestZapLogger_AddsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core), false)

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithOutletID(ctx, 7)
	log.Warnf(ctx, "collision on %s", "ORD-007-0001")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "collision on ORD-007-0001" || e.Level != zapcore.WarnLevel {
		t.Fatalf("unexpected entry: %+v", e)
	}
	fields := e.ContextMap()
	if fields["request_id"] != "req-1" {
		t.Fatalf("request_id=%v", fields["request_id"])
	}
	if fields["outlet_id"] != int64(7) {
		t.Fatalf("outlet_id=%v (%T)", fields["outlet_id"], fields["outlet_id"])
	}
}

func TestZapLogger_NoContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core), true)

	log.Infof(context.Background(), "started")
	log.Errorf(context.Background(), "failed: %v", "boom")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if len(entries[0].Context) != 0 {
		t.Fatalf("no fields expected, got %v", entries[0].Context)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Fatalf("want error level, got %s", entries[1].Level)
	}
}

//go:build otel
// +build otel

package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/rentshop_orders/pkg/ctxmeta"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTraceAndSpanIDs_FromContext_Otel(t *testing.T) {
	// Локальный TracerProvider — без глобальной настройки.
	tp := sdktrace.NewTracerProvider()
	tr := tp.Tracer("test")

	ctx, span := tr.Start(context.Background(), "op")
	defer span.End()

	traceID, ok := ctxmeta.TraceIDFromContext(ctx)
	if !ok {
		t.Fatalf("TraceIDFromContext must return ok=true in otel build")
	}
	spanID, ok := ctxmeta.SpanIDFromContext(ctx)
	if !ok {
		t.Fatalf("SpanIDFromContext must return ok=true in otel build")
	}

	if got, want := traceID, span.SpanContext().TraceID().String(); got != want {
		t.Fatalf("traceID=%s, want %s", got, want)
	}
	if got, want := spanID, span.SpanContext().SpanID().String(); got != want {
		t.Fatalf("spanID=%s, want %s", got, want)
	}
}

func TestTraceAndSpanIDs_InvalidContext_Otel(t *testing.T) {
	// Без спана в контексте должен вернуться "", false
	if id, ok := ctxmeta.TraceIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("TraceIDFromContext(background) => %q,%v; want \"\", false", id, ok)
	}
	if id, ok := ctxmeta.SpanIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("SpanIDFromContext(background) => %q,%v; want \"\", false", id, ok)
	}
}

func TestWithOutletID_TagsActiveSpan_Otel(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	ctx, span := tp.Tracer("test").Start(context.Background(), "create order")
	ctx = ctxmeta.WithOutletID(ctx, 42)
	span.End()

	if id, ok := ctxmeta.OutletIDFromContext(ctx); !ok || id != 42 {
		t.Fatalf("OutletIDFromContext => %d,%v; want 42, true", id, ok)
	}
	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("want 1 ended span, got %d", len(ended))
	}
	var found bool
	for _, kv := range ended[0].Attributes() {
		if kv.Key == ctxmeta.AttrOutletID && kv.Value.AsInt64() == 42 {
			found = true
		}
	}
	if !found {
		t.Fatalf("span must carry %s=42, got %v", ctxmeta.AttrOutletID, ended[0].Attributes())
	}
}

func TestWithOutletID_NoSpan_Otel(t *testing.T) {
	// без спана атрибут писать некуда, но id в контексте остаётся
	ctx := ctxmeta.WithOutletID(context.Background(), 7)
	if id, ok := ctxmeta.OutletIDFromContext(ctx); !ok || id != 7 {
		t.Fatalf("OutletIDFromContext => %d,%v; want 7, true", id, ok)
	}
}

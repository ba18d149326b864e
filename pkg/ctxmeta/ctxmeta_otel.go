//go:build otel && !gopls

package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AttrOutletID — атрибут спана с id торговой точки; по нему ищутся трейсы одной точки.
const AttrOutletID = attribute.Key("rental.outlet_id")

func activeSpan(ctx context.Context) (trace.SpanContext, bool) {
	if ctx == nil {
		return trace.SpanContext{}, false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	return sc, sc.IsValid()
}

func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := activeSpan(ctx)
	if !ok {
		return "", false
	}
	return sc.TraceID().String(), true
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := activeSpan(ctx)
	if !ok {
		return "", false
	}
	return sc.SpanID().String(), true
}

// tagOutlet — помечает активный спан точкой, для которой выдаётся номер.
func tagOutlet(ctx context.Context, outletID int64) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(AttrOutletID.Int64(outletID))
	}
}

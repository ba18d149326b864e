// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, outlet_id, trace_id).
// Идея: HTTP-слой и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyOutletID  ctxKey = "outlet_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithOutletID кладёт id торговой точки в контекст (неположительный id игнорируется).
// В сборке с `otel` тот же id пишется атрибутом активного спана.
func WithOutletID(ctx context.Context, outletID int64) context.Context {
	if ctx == nil || outletID <= 0 {
		return ctx
	}
	tagOutlet(ctx, outletID)
	return context.WithValue(ctx, KeyOutletID, outletID)
}

// OutletIDFromContext достаёт id торговой точки из контекста.
func OutletIDFromContext(ctx context.Context) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	if v, ok := ctx.Value(KeyOutletID).(int64); ok && v > 0 {
		return v, true
	}
	return 0, false
}

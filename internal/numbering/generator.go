// Package numbering — генерация уникальных человекочитаемых номеров заказов.
//
// Каждый формат реализован отдельной стратегией. Генератор сам ничего не пишет:
// кандидат проверяется через ports.OrderNumberStore, а уникальность при вставке
// заказа окончательно обеспечивает UNIQUE-ограничение в БД.
package numbering

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
	"github.com/Gunvolt24/rentshop_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/rentshop_orders/pkg/metrics"
	"github.com/Gunvolt24/rentshop_orders/pkg/telemetry"
)

// Проверка, что Generator удовлетворяет порту.
var _ ports.OrderNumberGenerator = (*Generator)(nil)

const (
	DefaultSequentialAttempts = 5
	DefaultRandomAttempts     = 10
	DefaultBackoffBase        = 10 * time.Millisecond
)

// Options — параметры генератора. Нулевые значения заменяются дефолтами.
type Options struct {
	SequentialAttempts int            // попыток у sequential (ретраи с backoff)
	RandomAttempts     int            // попыток у random/compact/hybrid
	BackoffBase        time.Duration  // задержка перед i-м повтором = 2^i × BackoffBase
	Location           *time.Location // часовой пояс для YYYYMMDD
	Now                func() time.Time
	Rand               io.Reader // источник случайности, по умолчанию crypto/rand
}

func (o Options) withDefaults() Options {
	if o.SequentialAttempts <= 0 {
		o.SequentialAttempts = DefaultSequentialAttempts
	}
	if o.RandomAttempts <= 0 {
		o.RandomAttempts = DefaultRandomAttempts
	}
	if o.BackoffBase <= 0 {
		o.BackoffBase = DefaultBackoffBase
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Rand == nil {
		o.Rand = rand.Reader
	}
	return o
}

// Generator — диспетчер стратегий по формату.
type Generator struct {
	store      ports.OrderNumberStore
	log        ports.Logger
	opts       Options
	strategies map[domain.Format]strategy
}

// New — DI-конструктор.
func New(store ports.OrderNumberStore, log ports.Logger, opts Options) *Generator {
	opts = opts.withDefaults()
	g := &Generator{store: store, log: log, opts: opts}

	g.strategies = map[domain.Format]strategy{
		domain.FormatSequential: &sequentialStrategy{
			store:       store,
			maxAttempts: opts.SequentialAttempts,
			backoffBase: opts.BackoffBase,
		},
		domain.FormatDateBased: &dateBasedStrategy{store: store},
		domain.FormatRandom: &randomStrategy{
			store: store, rnd: opts.Rand, maxAttempts: opts.RandomAttempts,
		},
		domain.FormatRandomNumeric: &randomStrategy{
			store: store, rnd: opts.Rand, maxAttempts: opts.RandomAttempts, forceNumeric: true,
		},
		domain.FormatCompactNumeric: &randomStrategy{
			store: store, rnd: opts.Rand, maxAttempts: opts.RandomAttempts, forceNumeric: true, compact: true,
		},
		domain.FormatHybrid: &hybridStrategy{
			store: store, rnd: opts.Rand, maxAttempts: opts.RandomAttempts,
		},
	}
	return g
}

// Generate — вернуть уникальный на момент проверки номер.
// Ошибки: domain.ErrInvalidNumberConfig, domain.ErrUnknownFormat, domain.ErrOutletNotFound,
// domain.ErrRetryExhausted, ошибки хранилища и контекста.
func (g *Generator) Generate(ctx context.Context, cfg domain.OrderNumberConfig) (domain.GeneratedOrderNumber, error) {
	cfg = cfg.WithDefaults()
	if err := ValidateConfig(cfg); err != nil {
		return domain.GeneratedOrderNumber{}, err
	}

	st, ok := g.strategies[cfg.Format]
	if !ok {
		return domain.GeneratedOrderNumber{}, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, cfg.Format)
	}

	ctx = ctxmeta.WithOutletID(ctx, cfg.OutletID)
	ctx, span := telemetry.Tracer("numbering").Start(ctx, "numbering.Generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("order_number.format", string(cfg.Format)),
		attribute.Int64("order_number.outlet_id", cfg.OutletID),
	)

	outlet, err := g.store.FindOutlet(ctx, cfg.OutletID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "find outlet")
		return domain.GeneratedOrderNumber{}, fmt.Errorf("find outlet: %w", err)
	}
	if outlet == nil {
		span.SetStatus(codes.Error, "outlet not found")
		return domain.GeneratedOrderNumber{}, fmt.Errorf("%w: id=%d", domain.ErrOutletNotFound, cfg.OutletID)
	}

	start := time.Now()
	now := g.opts.Now().In(g.opts.Location)
	res, err := st.generate(ctx, cfg, now)
	metrics.OrderNumberDuration.WithLabelValues(string(cfg.Format)).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.OrderNumbersGenerated.WithLabelValues(string(cfg.Format)).Inc()
		span.SetAttributes(attribute.String("order_number.value", res.OrderNumber))
		return res, nil
	case errors.Is(err, domain.ErrRetryExhausted):
		metrics.OrderNumberRetryExhausted.WithLabelValues(string(cfg.Format)).Inc()
		g.log.Warnf(ctx, "order number generation exhausted format=%s err=%v", cfg.Format, err)
	default:
		g.log.Errorf(ctx, "order number generation failed format=%s err=%v", cfg.Format, err)
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, "generate")
	return domain.GeneratedOrderNumber{}, err
}

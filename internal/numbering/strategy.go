package numbering

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
	"github.com/Gunvolt24/rentshop_orders/pkg/metrics"
)

// strategy — один формат номера. Конфиг уже провалидирован, точка существует.
type strategy interface {
	generate(ctx context.Context, cfg domain.OrderNumberConfig, now time.Time) (domain.GeneratedOrderNumber, error)
}

// outletPart — id точки, дополненный нулями до 3 знаков.
func outletPart(outletID int64) string {
	return fmt.Sprintf("%03d", outletID)
}

// dateStamp — календарная дата в формате YYYYMMDD.
func dateStamp(t time.Time) string {
	return t.Format("20060102")
}

// nextInSeries — следующий номер серии prefix + width цифр после наибольшего занятого.
// Серия конечна: после 9…9 номер шире width уже не был бы членом серии.
func nextInSeries(ctx context.Context, store ports.OrderNumberStore, prefix string, width int) (string, int, error) {
	latest, found, err := store.FindLatestOrderNumberWithPrefix(ctx, prefix, width)
	if err != nil {
		return "", 0, fmt.Errorf("find latest %q: %w", prefix, err)
	}

	seq := 1
	if found {
		if last, ok := ParseSequence(latest); ok {
			seq = last + 1
		}
	}
	if len(strconv.Itoa(seq)) > width {
		return "", 0, fmt.Errorf("%w: series %q is full at %d digits, increase sequence_length",
			domain.ErrRetryExhausted, prefix, width)
	}
	return fmt.Sprintf("%s%0*d", prefix, width, seq), seq, nil
}

// firstFree — генерирует кандидатов, пока не найдётся свободный, не более attempts раз.
func firstFree(
	ctx context.Context,
	store ports.OrderNumberStore,
	cfg domain.OrderNumberConfig,
	attempts int,
	next func() (string, error),
) (string, error) {
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := next()
		if err != nil {
			return "", err
		}
		exists, err := store.ExistsOrderNumber(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		metrics.OrderNumberCollisions.WithLabelValues(string(cfg.Format)).Inc()
	}
	return "", exhausted(cfg, attempts)
}

func exhausted(cfg domain.OrderNumberConfig, attempts int) error {
	return fmt.Errorf("%w: outlet %d, format %s, after %d attempts",
		domain.ErrRetryExhausted, cfg.OutletID, cfg.Format, attempts)
}

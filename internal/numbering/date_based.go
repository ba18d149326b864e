package numbering

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
	"github.com/Gunvolt24/rentshop_orders/pkg/metrics"
)

// dateBasedStrategy — {prefix}-{outlet:03d}-{YYYYMMDD}-{seq}; серия начинается заново каждый день.
// Повторов нет: одна проверка уникальности, при коллизии — ErrRetryExhausted.
type dateBasedStrategy struct {
	store ports.OrderNumberStore
}

func (s *dateBasedStrategy) generate(
	ctx context.Context,
	cfg domain.OrderNumberConfig,
	now time.Time,
) (domain.GeneratedOrderNumber, error) {
	prefix := fmt.Sprintf("%s-%s-%s-", cfg.Prefix, outletPart(cfg.OutletID), dateStamp(now))

	number, seq, err := nextInSeries(ctx, s.store, prefix, cfg.SequenceLength)
	if err != nil {
		return domain.GeneratedOrderNumber{}, err
	}
	exists, err := s.store.ExistsOrderNumber(ctx, number)
	if err != nil {
		return domain.GeneratedOrderNumber{}, fmt.Errorf("check %q: %w", number, err)
	}
	if exists {
		metrics.OrderNumberCollisions.WithLabelValues(string(cfg.Format)).Inc()
		return domain.GeneratedOrderNumber{}, exhausted(cfg, 1)
	}

	return domain.GeneratedOrderNumber{
		OrderNumber: number,
		Sequence:    seq,
		Format:      cfg.Format,
		GeneratedAt: now,
	}, nil
}

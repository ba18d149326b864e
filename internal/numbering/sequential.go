package numbering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
	"github.com/Gunvolt24/rentshop_orders/pkg/metrics"
)

// sequentialStrategy — {prefix}-{outlet:03d}-{seq}. Конкурентный писатель мог занять
// тот же номер между чтением и проверкой: тогда пересчитываем с экспоненциальной паузой.
type sequentialStrategy struct {
	store       ports.OrderNumberStore
	maxAttempts int
	backoffBase time.Duration
}

func (s *sequentialStrategy) generate(
	ctx context.Context,
	cfg domain.OrderNumberConfig,
	now time.Time,
) (domain.GeneratedOrderNumber, error) {
	prefix := cfg.Prefix + "-" + outletPart(cfg.OutletID) + "-"

	var (
		res      domain.GeneratedOrderNumber
		attempts int
	)
	err := retry.Do(ctx, sequentialBackoff(s.backoffBase, s.maxAttempts), func(ctx context.Context) error {
		attempts++

		number, seq, err := nextInSeries(ctx, s.store, prefix, cfg.SequenceLength)
		if err != nil {
			return err
		}
		exists, err := s.store.ExistsOrderNumber(ctx, number)
		if err != nil {
			return fmt.Errorf("check %q: %w", number, err)
		}
		if exists {
			metrics.OrderNumberCollisions.WithLabelValues(string(cfg.Format)).Inc()
			return retry.RetryableError(fmt.Errorf("%w: %s", domain.ErrOrderNumberCollision, number))
		}

		res = domain.GeneratedOrderNumber{
			OrderNumber: number,
			Sequence:    seq,
			Format:      cfg.Format,
			GeneratedAt: now,
		}
		return nil
	})

	if errors.Is(err, domain.ErrOrderNumberCollision) {
		return domain.GeneratedOrderNumber{}, exhausted(cfg, attempts)
	}
	if err != nil {
		return domain.GeneratedOrderNumber{}, err
	}
	return res, nil
}

// sequentialBackoff — паузы между попытками: base, 2·base, 4·base, ...;
// после attempts-1 повторов — стоп. При base=10ms и 5 попытках суммарно 150ms.
func sequentialBackoff(base time.Duration, attempts int) retry.Backoff {
	retries := 0
	return retry.BackoffFunc(func() (time.Duration, bool) {
		if retries >= attempts-1 {
			return 0, true
		}
		d := base << retries
		retries++
		return d, false
	})
}

package numbering

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
)

const hybridSuffixLength = 4

// hybridStrategy — {prefix}-{outlet:03d}-{YYYYMMDD}-{random4}: читаемая дата плюс короткий
// случайный хвост. Число попыток ограничено так же, как у random.
type hybridStrategy struct {
	store       ports.OrderNumberStore
	rnd         io.Reader
	maxAttempts int
}

func (s *hybridStrategy) generate(
	ctx context.Context,
	cfg domain.OrderNumberConfig,
	now time.Time,
) (domain.GeneratedOrderNumber, error) {
	alphabet := alphanumeric
	if cfg.NumericOnly {
		alphabet = digits
	}
	head := fmt.Sprintf("%s-%s-%s-", cfg.Prefix, outletPart(cfg.OutletID), dateStamp(now))

	number, err := firstFree(ctx, s.store, cfg, s.maxAttempts, func() (string, error) {
		suffix, err := randomString(s.rnd, alphabet, hybridSuffixLength)
		if err != nil {
			return "", err
		}
		return head + suffix, nil
	})
	if err != nil {
		return domain.GeneratedOrderNumber{}, err
	}

	return domain.GeneratedOrderNumber{
		OrderNumber: number,
		Format:      cfg.Format,
		GeneratedAt: now,
	}, nil
}

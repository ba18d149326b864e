package numbering

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
)

const (
	digits       = "0123456789"
	alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// randomStrategy — случайный суффикс длины RandomLength.
//
//	random:          {prefix}-{outlet:03d}-{A-Z0-9}   (только цифры при NumericOnly)
//	random-numeric:  {prefix}-{outlet:03d}-{0-9}
//	compact-numeric: {prefix}{outlet:03d}{0-9}
//
// Вероятность коллизии растёт с числом заказов точки и падает с длиной суффикса;
// RandomLength и число попыток — ручки настройки, а не гарантия.
type randomStrategy struct {
	store        ports.OrderNumberStore
	rnd          io.Reader
	maxAttempts  int
	forceNumeric bool
	compact      bool
}

func (s *randomStrategy) generate(
	ctx context.Context,
	cfg domain.OrderNumberConfig,
	now time.Time,
) (domain.GeneratedOrderNumber, error) {
	alphabet := alphanumeric
	if s.forceNumeric || cfg.NumericOnly {
		alphabet = digits
	}

	number, err := firstFree(ctx, s.store, cfg, s.maxAttempts, func() (string, error) {
		suffix, err := randomString(s.rnd, alphabet, cfg.RandomLength)
		if err != nil {
			return "", err
		}
		if s.compact {
			return cfg.Prefix + outletPart(cfg.OutletID) + suffix, nil
		}
		return cfg.Prefix + "-" + outletPart(cfg.OutletID) + "-" + suffix, nil
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

// randomString — n равномерно распределённых символов алфавита.
func randomString(r io.Reader, alphabet string, n int) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	size := big.NewInt(int64(len(alphabet)))

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(r, size)
		if err != nil {
			return "", fmt.Errorf("random source: %w", err)
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String(), nil
}

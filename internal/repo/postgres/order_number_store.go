package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
)

// Проверка, что OrderNumberStore удовлетворяет порту генератора.
var _ ports.OrderNumberStore = (*OrderNumberStore)(nil)

// OrderNumberStore — чтения, нужные генератору номеров. Ничего не пишет.
type OrderNumberStore struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

func NewOrderNumberStore(pool *pgxpool.Pool) *OrderNumberStore {
	return &OrderNumberStore{pool: pool, sb: builder()}
}

// FindOutlet — точка по id; (nil, nil), если её нет.
func (s *OrderNumberStore) FindOutlet(ctx context.Context, outletID int64) (*domain.Outlet, error) {
	var outlet domain.Outlet
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, created_at FROM outlets WHERE id = $1
	`, outletID).Scan(&outlet.ID, &outlet.Name, &outlet.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select outlet: %w", err)
	}
	return &outlet, nil
}

// FindLatestOrderNumberWithPrefix — номер с наибольшим порядковым номером серии prefix + ровно width цифр.
// Хвост фиксированной ширины отсекает номера других форматов с тем же началом:
// "ORD-001-20261018-0001" и random-numeric "ORD-001-482914" не входят в серию "ORD-001-" ширины 4.
// Хвосты одной ширины сравниваются как строки так же, как числа.
func (s *OrderNumberStore) FindLatestOrderNumberWithPrefix(ctx context.Context, prefix string, width int) (string, bool, error) {
	if width <= 0 {
		return "", false, fmt.Errorf("series width must be positive, got %d", width)
	}
	query, args, err := s.sb.
		Select("order_number").
		From("orders").
		Where(squirrel.Like{"order_number": escapeLike(prefix) + strings.Repeat("_", width)}).
		Where("substr(order_number, ?) ~ '^[0-9]+$'", len(prefix)+1).
		OrderBy("order_number DESC", "created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build latest query: %w", err)
	}

	var number string
	err = s.pool.QueryRow(ctx, query, args...).Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select latest order number: %w", err)
	}
	return number, true, nil
}

// ExistsOrderNumber — занят ли номер.
func (s *OrderNumberStore) ExistsOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM orders WHERE order_number = $1)
	`, orderNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("select order number exists: %w", err)
	}
	return exists, nil
}

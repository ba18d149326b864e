package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	orderNumberConstraint = "orders_order_number_key"
)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool, sb: builder()}
}

// orderRow — строка таблицы orders для pgxscan.
type orderRow struct {
	ID           int64           `db:"id"`
	OutletID     int64           `db:"outlet_id"`
	OrderNumber  string          `db:"order_number"`
	Type         string          `db:"type"`
	CustomerName string          `db:"customer_name"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	CreatedAt    time.Time       `db:"created_at"`
}

func (r orderRow) toDomain() *domain.Order {
	return &domain.Order{
		ID:           r.ID,
		OutletID:     r.OutletID,
		OrderNumber:  r.OrderNumber,
		Type:         domain.OrderType(r.Type),
		CustomerName: r.CustomerName,
		TotalAmount:  r.TotalAmount,
		CreatedAt:    r.CreatedAt,
	}
}

var orderColumns = []string{
	"id", "outlet_id", "order_number", "type", "customer_name", "total_amount", "created_at",
}

// Create — вставка заказа. Проставляет ID и CreatedAt.
// Занятый номер -> domain.ErrDuplicateOrderNumber, несуществующая точка -> domain.ErrOutletNotFound.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order == nil || order.OrderNumber == "" {
		return errors.New("order is empty or order_number is required")
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (outlet_id, order_number, type, customer_name, total_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		order.OutletID, order.OrderNumber, string(order.Type), order.CustomerName, order.TotalAmount,
	).Scan(&order.ID, &order.CreatedAt)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == orderNumberConstraint:
			return fmt.Errorf("%w: %s", domain.ErrDuplicateOrderNumber, order.OrderNumber)
		case pgErr.Code == pgForeignKeyViolation:
			return fmt.Errorf("%w: id=%d", domain.ErrOutletNotFound, order.OutletID)
		}
	}
	return fmt.Errorf("insert order: %w", err)
}

// GetByNumber — заказ по номеру. Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query, args, err := r.sb.
		Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"order_number": orderNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var row orderRow
	if err := pgxscan.Get(ctx, r.pool, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order: %w", err)
	}
	return row.toDomain(), nil
}

// ListByOutlet — постраничный список заказов точки, новые первыми.
func (r *OrderRepository) ListByOutlet(ctx context.Context, outletID int64, limit, offset int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query, args, err := r.sb.
		Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"outlet_id": outletID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []orderRow
	if err := pgxscan.Select(ctx, r.pool, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select outlet orders: %w", err)
	}

	orders := make([]*domain.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toDomain())
	}
	return orders, nil
}

// OutletStats — всего заказов, заказов за [dayStart, dayEnd) и последний заказ точки.
func (r *OrderRepository) OutletStats(
	ctx context.Context,
	outletID int64,
	dayStart, dayEnd time.Time,
) (domain.OutletOrderStats, error) {
	stats := domain.OutletOrderStats{OutletID: outletID}

	countQuery, args, err := r.sb.
		Select("count(*)").
		Column(squirrel.Expr("count(*) FILTER (WHERE created_at >= ? AND created_at < ?)", dayStart, dayEnd)).
		From("orders").
		Where(squirrel.Eq{"outlet_id": outletID}).
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("build stats query: %w", err)
	}
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&stats.TotalOrders, &stats.TodayOrders); err != nil {
		return stats, fmt.Errorf("select outlet counts: %w", err)
	}
	if stats.TotalOrders == 0 {
		return stats, nil
	}

	lastQuery, args, err := r.sb.
		Select("order_number", "created_at").
		From("orders").
		Where(squirrel.Eq{"outlet_id": outletID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("build last order query: %w", err)
	}

	var lastAt time.Time
	err = r.pool.QueryRow(ctx, lastQuery, args...).Scan(&stats.LastOrderNumber, &lastAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// заказ удалили между запросами
	case err != nil:
		return stats, fmt.Errorf("select last order: %w", err)
	default:
		stats.LastOrderAt = &lastAt
	}
	return stats, nil
}

// LastOutlets — n точек с самыми свежими заказами (точки без заказов — в конце).
func (r *OrderRepository) LastOutlets(ctx context.Context, n int) ([]*domain.Outlet, error) {
	if n <= 0 {
		return []*domain.Outlet{}, nil
	}

	var outlets []*domain.Outlet
	err := pgxscan.Select(ctx, r.pool, &outlets, `
		SELECT o.id, o.name, o.created_at
		FROM outlets o
		LEFT JOIN LATERAL (
			SELECT max(created_at) AS last_at FROM orders WHERE outlet_id = o.id
		) l ON TRUE
		ORDER BY l.last_at DESC NULLS LAST, o.id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last outlets: %w", err)
	}
	return outlets, nil
}

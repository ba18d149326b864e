package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

// OrderRepository — запись и чтение заказов.
type OrderRepository interface {
	// Create — вставка заказа; при занятом номере возвращает domain.ErrDuplicateOrderNumber.
	Create(ctx context.Context, order *domain.Order) error
	// GetByNumber — (nil, nil), если заказа нет.
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	ListByOutlet(ctx context.Context, outletID int64, limit, offset int) ([]*domain.Order, error)
	// OutletStats — агрегаты точки; "сегодня" — полуинтервал [dayStart, dayEnd).
	OutletStats(ctx context.Context, outletID int64, dayStart, dayEnd time.Time) (domain.OutletOrderStats, error)
	// LastOutlets — последние n точек (для прогрева кэша).
	LastOutlets(ctx context.Context, n int) ([]*domain.Outlet, error)
}

package ports

import (
	"context"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

// OrderNumberStore — всё, что генератору номеров нужно от хранилища.
// Генератор ничего не пишет: только читает и проверяет уникальность.
type OrderNumberStore interface {
	// FindOutlet — точка по id; (nil, nil), если не найдена.
	FindOutlet(ctx context.Context, outletID int64) (*domain.Outlet, error)

	// FindLatestOrderNumberWithPrefix — номер серии prefix + ровно width цифр
	// с наибольшим порядковым номером. found=false, если таких заказов нет.
	FindLatestOrderNumberWithPrefix(ctx context.Context, prefix string, width int) (number string, found bool, err error)

	// ExistsOrderNumber — занят ли номер.
	ExistsOrderNumber(ctx context.Context, orderNumber string) (bool, error)
}

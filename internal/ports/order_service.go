package ports

import (
	"context"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

// OrderService — прикладной сервис заказов, как его видит транспорт.
type OrderService interface {
	GenerateOrderNumber(ctx context.Context, outletID int64, opts *domain.NumberOptions) (domain.GeneratedOrderNumber, error)
	CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error)
	OrdersByOutlet(ctx context.Context, outletID int64, limit, offset int) ([]*domain.Order, error)
	OutletStats(ctx context.Context, outletID int64) (domain.OutletOrderStats, error)
	ValidateOrderNumber(orderNumber string) domain.FormatValidation
}

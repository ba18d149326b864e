package ports

import (
	"context"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

// OrderValidator — проверка заявки на создание заказа.
type OrderValidator interface {
	Validate(ctx context.Context, req *domain.CreateOrderRequest) error
}

package ports

import (
	"context"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

// OrderNumberGenerator — генерация уникального номера заказа.
// Наружу выходят только domain.ErrOutletNotFound, domain.ErrRetryExhausted и ошибки конфига/хранилища.
type OrderNumberGenerator interface {
	Generate(ctx context.Context, cfg domain.OrderNumberConfig) (domain.GeneratedOrderNumber, error)
}

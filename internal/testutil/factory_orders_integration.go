//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// InsertOutlet — создаёт торговую точку напрямую в БД.
func InsertOutlet(ctx context.Context, pool *pgxpool.Pool, name string) (*domain.Outlet, error) {
	var o domain.Outlet
	err := pool.QueryRow(ctx, `
		INSERT INTO outlets (name) VALUES ($1) RETURNING id, name, created_at
	`, name).Scan(&o.ID, &o.Name, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert outlet: %w", err)
	}
	return &o, nil
}

// Мини-генератор валидного заказа точки.
func MakeOrder(outletID int64, number string, opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		OutletID:     outletID,
		OrderNumber:  number,
		Type:         domain.OrderTypeRent,
		CustomerName: "John Smith " + UniqSuffix(),
		TotalAmount:  decimal.RequireFromString("1200.50"),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithType(t domain.OrderType) func(*domain.Order) {
	return func(o *domain.Order) { o.Type = t }
}

func WithAmount(amount string) func(*domain.Order) {
	return func(o *domain.Order) { o.TotalAmount = decimal.RequireFromString(amount) }
}

// MakeCreateRequest — валидная заявка на создание заказа.
func MakeCreateRequest(outletID int64) domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		OutletID:     outletID,
		Type:         domain.OrderTypeSale,
		CustomerName: "Jane Doe " + UniqSuffix(),
		TotalAmount:  decimal.RequireFromString("99.99"),
	}
}

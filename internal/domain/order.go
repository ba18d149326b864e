package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType — тип заказа: аренда или продажа.
type OrderType string

const (
	OrderTypeRent OrderType = "rent"
	OrderTypeSale OrderType = "sale"
)

// Valid — известен ли тип заказа.
func (t OrderType) Valid() bool {
	return t == OrderTypeRent || t == OrderTypeSale
}

// Order — сохранённый заказ. OrderNumber уникален и после сохранения не меняется.
type Order struct {
	ID           int64           `json:"id"`
	OutletID     int64           `json:"outlet_id"`
	OrderNumber  string          `json:"order_number"`
	Type         OrderType       `json:"type"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateOrderRequest — входные данные для создания заказа (HTTP и Kafka).
// Number — необязательные переопределения настроек нумерации.
type CreateOrderRequest struct {
	OutletID     int64           `json:"outlet_id"`
	Type         OrderType       `json:"type"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OrderNumber  string          `json:"order_number,omitempty"`
	Number       *NumberOptions  `json:"number,omitempty"`
}

package domain

import "time"

// Outlet — точка проката (филиал), к которой привязаны заказы.
type Outlet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// OutletOrderStats — агрегаты по заказам точки (только чтение).
type OutletOrderStats struct {
	OutletID        int64      `json:"outlet_id"`
	TotalOrders     int64      `json:"total_orders"`
	TodayOrders     int64      `json:"today_orders"`
	LastOrderNumber string     `json:"last_order_number,omitempty"`
	LastOrderAt     *time.Time `json:"last_order_at,omitempty"`
}

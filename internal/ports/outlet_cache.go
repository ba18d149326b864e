package ports

import (
	"context"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

// OutletCache — интерфейс кэша точек.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type OutletCache interface {
	// Get — вернуть точку по id; (outlet, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, outletID int64) (*domain.Outlet, bool)

	// Set — сохранить/обновить точку в кэше.
	Set(ctx context.Context, outlet *domain.Outlet) error

	// WarmUp — массовая загрузка кэша при старте; поддерживает отмену контекста.
	WarmUp(ctx context.Context, outlets []*domain.Outlet) error
}

package memory

import (
	"context"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
)

var _ ports.OrderNumberStore = (*CachingStore)(nil)

// CachingStore — ports.OrderNumberStore, у которого FindOutlet идёт сначала в кэш.
// Проверки номеров всегда уходят в хранилище: их кэшировать нельзя.
type CachingStore struct {
	ports.OrderNumberStore
	cache ports.OutletCache
	log   ports.Logger
}

func NewCachingStore(store ports.OrderNumberStore, cache ports.OutletCache, log ports.Logger) *CachingStore {
	return &CachingStore{OrderNumberStore: store, cache: cache, log: log}
}

// FindOutlet — кэш, затем хранилище. Отсутствующая точка не кэшируется:
// созданная позже точка должна стать видна сразу.
func (s *CachingStore) FindOutlet(ctx context.Context, outletID int64) (*domain.Outlet, error) {
	if outlet, ok := s.cache.Get(ctx, outletID); ok {
		return outlet, nil
	}

	outlet, err := s.OrderNumberStore.FindOutlet(ctx, outletID)
	if err != nil || outlet == nil {
		return outlet, err
	}
	if setErr := s.cache.Set(ctx, outlet); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed outlet_id=%d err=%v", outletID, setErr)
	}
	return outlet, nil
}

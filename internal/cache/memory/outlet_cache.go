// Package memory — in-process кэш торговых точек (LRU + TTL).
package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
	"github.com/Gunvolt24/rentshop_orders/pkg/metrics"
)

var _ ports.OutletCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        int64
	outlet    *domain.Outlet
	expiresAt time.Time
}

// LRUCacheTTL — кэш точек: вытеснение по LRU, TTL продлевается при чтении.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	ll    *list.List
	cache map[int64]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		cache:    make(map[int64]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, id int64) (*domain.Outlet, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneOutlet(ent.outlet), true
}

func (c *LRUCacheTTL) Set(_ context.Context, outlet *domain.Outlet) error {
	if outlet == nil || outlet.ID <= 0 {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[outlet.ID]; ok {
		ent := elem.Value.(*entry)
		ent.outlet = cloneOutlet(outlet)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        outlet.ID,
		outlet:    cloneOutlet(outlet),
		expiresAt: c.expiryFrom(now),
	})
	c.cache[outlet.ID] = elem
	metrics.CacheSize.Set(float64(c.ll.Len()))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

func (c *LRUCacheTTL) WarmUp(ctx context.Context, outlets []*domain.Outlet) error {
	for _, outlet := range outlets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, outlet); err != nil {
			return err
		}
	}
	return nil
}

// Len — текущее число записей (включая ещё не вычищенные просроченные).
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

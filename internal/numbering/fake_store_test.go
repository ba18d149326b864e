package numbering

import (
	"context"
	"strings"
	"sync"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// memStore — хранилище в памяти: номера в порядке "создания".
type memStore struct {
	mu      sync.Mutex
	outlets map[int64]bool
	numbers []string
	taken   map[string]bool
}

func newMemStore(outletIDs ...int64) *memStore {
	s := &memStore{outlets: map[int64]bool{}, taken: map[string]bool{}}
	for _, id := range outletIDs {
		s.outlets[id] = true
	}
	return s
}

// persist — имитация вставки заказа с полученным номером.
func (s *memStore) persist(number string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.numbers = append(s.numbers, number)
	s.taken[number] = true
}

func (s *memStore) FindOutlet(_ context.Context, id int64) (*domain.Outlet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.outlets[id] {
		return nil, nil
	}
	return &domain.Outlet{ID: id, Name: "outlet"}, nil
}

// FindLatestOrderNumberWithPrefix — как в postgres: хвост ровно width цифр, наибольший хвост.
func (s *memStore) FindLatestOrderNumberWithPrefix(_ context.Context, prefix string, width int) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	best := ""
	for _, n := range s.numbers {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		rest := n[len(prefix):]
		if len(rest) != width || strings.Trim(rest, digits) != "" {
			continue
		}
		if n > best {
			best = n
		}
	}
	return best, best != "", nil
}

func (s *memStore) ExistsOrderNumber(_ context.Context, number string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taken[number], nil
}

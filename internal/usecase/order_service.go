package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/numbering"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
	"github.com/Gunvolt24/rentshop_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/rentshop_orders/pkg/metrics"
	"github.com/Gunvolt24/rentshop_orders/pkg/validate"
)

// Проверка, что OrderService удовлетворяет порту транспорта.
var _ ports.OrderService = (*OrderService)(nil)

const (
	defaultCreateAttempts = 3
	createRetryDelay      = 5 * time.Millisecond
)

// Settings — настройки нумерации, общие для всех точек.
type Settings struct {
	Defaults          domain.OrderNumberConfig // формат/префикс/длины по умолчанию; OutletID игнорируется
	CreateMaxAttempts int                      // попыток вставки при конфликте номера
	Location          *time.Location           // граница "сегодня" для статистики
	Now               func() time.Time
}

// OrderService — прикладная логика нумерации и заказов (без знаний о транспорте).
type OrderService struct {
	repo      ports.OrderRepository      // прямой доступ к хранилищу заказов
	outlets   ports.OrderNumberStore     // поиск точек (через кэш)
	gen       ports.OrderNumberGenerator // генератор номеров
	cache     ports.OutletCache          // прогрев кэша точек
	log       ports.Logger
	validator ports.OrderValidator
	settings  Settings
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	outlets ports.OrderNumberStore,
	gen ports.OrderNumberGenerator,
	cache ports.OutletCache,
	log ports.Logger,
	validator ports.OrderValidator,
	settings Settings,
) *OrderService {
	if settings.CreateMaxAttempts <= 0 {
		settings.CreateMaxAttempts = defaultCreateAttempts
	}
	if settings.Location == nil {
		settings.Location = time.Local
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &OrderService{
		repo:      repo,
		outlets:   outlets,
		gen:       gen,
		cache:     cache,
		log:       log,
		validator: validator,
		settings:  settings,
	}
}

// numberConfig — настройки по умолчанию + переопределения из запроса.
func (s *OrderService) numberConfig(outletID int64, opts *domain.NumberOptions) domain.OrderNumberConfig {
	base := s.settings.Defaults
	base.OutletID = outletID
	return opts.Apply(base)
}

// GenerateOrderNumber — выдать номер без создания заказа (предпросмотр/резерв на стороне клиента).
func (s *OrderService) GenerateOrderNumber(
	ctx context.Context,
	outletID int64,
	opts *domain.NumberOptions,
) (domain.GeneratedOrderNumber, error) {
	ctx = ctxmeta.WithOutletID(ctx, outletID)

	res, err := s.gen.Generate(ctx, s.numberConfig(outletID, opts))
	if err != nil {
		return domain.GeneratedOrderNumber{}, err
	}
	s.log.Infof(ctx, "order number generated number=%s format=%s", res.OrderNumber, res.Format)
	return res, nil
}

// CreateOrder — создать заказ с уникальным номером.
// Шаги:
//  1. валидация заявки (validate.ErrInvalidOrder);
//  2. генерация номера;
//  3. вставка; UNIQUE в БД окончательно гарантирует уникальность, при конфликте номер
//     генерируется заново, не более CreateMaxAttempts раз, затем domain.ErrRetryExhausted.
//
// Заранее присвоенный номер (order_number в заявке) вставляется как есть, без повторов.
func (s *OrderService) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error) {
	if req != nil {
		ctx = ctxmeta.WithOutletID(ctx, req.OutletID)
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		s.log.Warnf(ctx, "validation failed err=%v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.OrderNumber != "" {
		return s.createWithNumber(ctx, req)
	}

	cfg := s.numberConfig(req.OutletID, req.Number)
	attempts := 0
	backoff := retry.WithMaxRetries(uint64(s.settings.CreateMaxAttempts-1), retry.NewConstant(createRetryDelay))

	order, err := retry.DoValue(ctx, backoff, func(ctx context.Context) (*domain.Order, error) {
		attempts++

		num, err := s.gen.Generate(ctx, cfg)
		if err != nil {
			return nil, err
		}
		order := newOrder(req, num.OrderNumber)
		if err := s.repo.Create(ctx, order); err != nil {
			if errors.Is(err, domain.ErrDuplicateOrderNumber) {
				metrics.OrderNumberCollisions.WithLabelValues(string(num.Format)).Inc()
				s.log.Warnf(ctx, "order number taken on insert number=%s attempt=%d/%d",
					num.OrderNumber, attempts, s.settings.CreateMaxAttempts)
				return nil, retry.RetryableError(err)
			}
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		return order, nil
	})

	switch {
	case err == nil:
		s.log.Infof(ctx, "order created number=%s type=%s", order.OrderNumber, order.Type)
		return order, nil
	case errors.Is(err, domain.ErrDuplicateOrderNumber):
		metrics.OrderNumberRetryExhausted.WithLabelValues(string(cfg.WithDefaults().Format)).Inc()
		return nil, fmt.Errorf("%w: outlet %d, insert conflicts after %d attempts",
			domain.ErrRetryExhausted, req.OutletID, attempts)
	default:
		s.log.Errorf(ctx, "create order failed err=%v", err)
		return nil, err
	}
}

func (s *OrderService) createWithNumber(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error) {
	outlet, err := s.outlets.FindOutlet(ctx, req.OutletID)
	if err != nil {
		return nil, fmt.Errorf("find outlet: %w", err)
	}
	if outlet == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrOutletNotFound, req.OutletID)
	}

	order := newOrder(req, req.OrderNumber)
	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Warnf(ctx, "create order with pre-assigned number=%s failed err=%v", req.OrderNumber, err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.log.Infof(ctx, "order created with pre-assigned number=%s", order.OrderNumber)
	return order, nil
}

func newOrder(req *domain.CreateOrderRequest, number string) *domain.Order {
	return &domain.Order{
		OutletID:     req.OutletID,
		OrderNumber:  number,
		Type:         req.Type,
		CustomerName: req.CustomerName,
		TotalAmount:  req.TotalAmount,
	}
}

// CreateFromMessage — создать заказ по заявке из Kafka (raw JSON, строгий разбор).
func (s *OrderService) CreateFromMessage(ctx context.Context, raw []byte) error {
	req, err := validate.DecodeCreateOrderRequest(raw)
	if err != nil {
		s.log.Warnf(ctx, "%v", err)
		return err
	}
	_, err = s.CreateOrder(ctx, req)
	return err
}

// GetOrder — заказ по номеру; domain.ErrOrderNotFound, если его нет.
func (s *OrderService) GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error) {
	order, err := s.repo.GetByNumber(ctx, orderNumber)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByNumber failed number=%s err=%v", orderNumber, err)
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderNumber)
	}
	return order, nil
}

// OrdersByOutlet — заказы точки, новые первыми (пагинация уже валидирована на верхнем уровне).
func (s *OrderService) OrdersByOutlet(
	ctx context.Context,
	outletID int64,
	limit, offset int,
) ([]*domain.Order, error) {
	ctx = ctxmeta.WithOutletID(ctx, outletID)
	if err := s.requireOutlet(ctx, outletID); err != nil {
		return nil, err
	}
	return s.repo.ListByOutlet(ctx, outletID, limit, offset)
}

// OutletStats — сводка по точке; "сегодня" считается в настроенном часовом поясе.
func (s *OrderService) OutletStats(ctx context.Context, outletID int64) (domain.OutletOrderStats, error) {
	ctx = ctxmeta.WithOutletID(ctx, outletID)
	if err := s.requireOutlet(ctx, outletID); err != nil {
		return domain.OutletOrderStats{}, err
	}

	dayStart, dayEnd := dayBounds(s.settings.Now(), s.settings.Location)
	stats, err := s.repo.OutletStats(ctx, outletID, dayStart, dayEnd)
	if err != nil {
		s.log.Errorf(ctx, "repo.OutletStats failed err=%v", err)
		return domain.OutletOrderStats{}, err
	}
	stats.OutletID = outletID
	return stats, nil
}

// ValidateOrderNumber — проверка формата номера с подсказкой.
func (s *OrderService) ValidateOrderNumber(orderNumber string) domain.FormatValidation {
	return numbering.ValidateOrderNumberFormat(orderNumber)
}

// WarmUpCache — прогрев кэша последними N точками из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *OrderService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastOutlets(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastOutlets failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d outlets in %s", len(list), time.Since(start))
	return nil
}

func (s *OrderService) requireOutlet(ctx context.Context, outletID int64) error {
	outlet, err := s.outlets.FindOutlet(ctx, outletID)
	if err != nil {
		return fmt.Errorf("find outlet: %w", err)
	}
	if outlet == nil {
		return fmt.Errorf("%w: id=%d", domain.ErrOutletNotFound, outletID)
	}
	return nil
}

// dayBounds — полуинтервал [00:00, 00:00 следующего дня) в loc.
func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

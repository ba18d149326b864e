package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/numbering"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

const maxCustomerNameLen = 200

// OrderValidator — валидация заявки на создание заказа.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет поля заявки, заранее присвоенный номер и переопределения нумерации.
func (v *OrderValidator) Validate(_ context.Context, req *domain.CreateOrderRequest) error {
	if err := v.validateCore(req); err != nil {
		return err
	}
	if err := v.validateAmount(req); err != nil {
		return err
	}
	if err := v.validateOrderNumber(req.OrderNumber, req.OutletID); err != nil {
		return err
	}
	return v.validateNumberOptions(req)
}

func (v *OrderValidator) validateCore(req *domain.CreateOrderRequest) error {
	if req == nil {
		return fmt.Errorf("%w: заявка не может быть nil", ErrInvalidOrder)
	}
	if req.OutletID <= 0 {
		return fmt.Errorf("%w: outlet_id должен быть положительным", ErrInvalidOrder)
	}
	if !req.Type.Valid() {
		return fmt.Errorf("%w: type должен быть rent или sale, получено %q", ErrInvalidOrder, req.Type)
	}
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer_name обязателен", ErrInvalidOrder)
	}
	if utf8.RuneCountInString(name) > maxCustomerNameLen {
		return fmt.Errorf("%w: customer_name длиннее %d символов", ErrInvalidOrder, maxCustomerNameLen)
	}
	return nil
}

// Сумма в копейках: не отрицательная, не больше двух знаков после запятой.
func (v *OrderValidator) validateAmount(req *domain.CreateOrderRequest) error {
	if req.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: total_amount должен быть неотрицательным", ErrInvalidOrder)
	}
	if !req.TotalAmount.Equal(req.TotalAmount.Round(2)) {
		return fmt.Errorf("%w: total_amount допускает не более 2 знаков после запятой", ErrInvalidOrder)
	}
	return nil
}

// Заранее присвоенный номер (импорт из внешней системы) должен быть в одном из известных форматов
// и нести id той же точки, иначе он попадёт в серию чужой точки.
func (v *OrderValidator) validateOrderNumber(number string, outletID int64) error {
	if number == "" {
		return nil
	}
	res := numbering.ValidateOrderNumberFormat(number)
	if !res.Valid {
		return fmt.Errorf("%w: order_number %q некорректен: %s", ErrInvalidOrder, number, res.Suggestion)
	}
	if !numbering.BelongsToOutlet(number, outletID) {
		return fmt.Errorf("%w: order_number %q не относится к точке %d", ErrInvalidOrder, number, outletID)
	}
	return nil
}

func (v *OrderValidator) validateNumberOptions(req *domain.CreateOrderRequest) error {
	if req.Number == nil {
		return nil
	}
	if req.Number.Format != "" && !req.Number.Format.Valid() {
		return fmt.Errorf("%w: number.format %q не поддерживается", ErrInvalidOrder, req.Number.Format)
	}
	cfg := req.Number.Apply(domain.OrderNumberConfig{OutletID: req.OutletID}).WithDefaults()
	if err := numbering.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("%w: number: %w", ErrInvalidOrder, err)
	}
	return nil
}

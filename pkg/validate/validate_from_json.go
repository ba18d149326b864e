package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/internal/ports"
)

// DecodeCreateOrderRequest — строгий разбор заявки: неизвестные поля и хвост после объекта запрещены.
// Битый JSON — тоже ErrInvalidOrder: повторная обработка его не исправит.
func DecodeCreateOrderRequest(raw []byte) (*domain.CreateOrderRequest, error) {
	var req domain.CreateOrderRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", ErrInvalidOrder, err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidOrder)
	}
	return &req, nil
}

// ValidateRequestFromJSON — разбор и валидация заявки из JSON.
func ValidateRequestFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.CreateOrderRequest, error) {
	req, err := DecodeCreateOrderRequest(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

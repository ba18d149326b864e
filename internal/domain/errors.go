package domain

import "errors"

var (
	// ErrOutletNotFound — точка не найдена; не ретраится.
	ErrOutletNotFound = errors.New("outlet not found")

	// ErrOrderNumberCollision — сгенерированный номер уже занят (временная ошибка, ретраится внутри генератора).
	ErrOrderNumberCollision = errors.New("order number collision")

	// ErrRetryExhausted — попытки исчерпаны, уникальный номер не получен.
	ErrRetryExhausted = errors.New("failed to generate unique order number")

	// ErrDuplicateOrderNumber — нарушение уникальности при вставке заказа.
	ErrDuplicateOrderNumber = errors.New("duplicate order number")

	// ErrOrderNotFound — заказ не найден.
	ErrOrderNotFound = errors.New("order not found")

	// ErrUnknownFormat — неизвестный формат нумерации.
	ErrUnknownFormat = errors.New("unknown order number format")

	// ErrInvalidNumberConfig — некорректные параметры нумерации (префикс, длины, outlet_id).
	ErrInvalidNumberConfig = errors.New("invalid order number config")
)

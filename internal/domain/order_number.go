package domain

import (
	"slices"
	"time"
)

// Format — схема построения номера заказа.
type Format string

const (
	FormatSequential     Format = "sequential"
	FormatDateBased      Format = "date-based"
	FormatRandom         Format = "random"
	FormatRandomNumeric  Format = "random-numeric"
	FormatCompactNumeric Format = "compact-numeric"
	FormatHybrid         Format = "hybrid"
)

// Formats — все поддерживаемые форматы в порядке объявления.
var Formats = []Format{
	FormatSequential,
	FormatDateBased,
	FormatRandom,
	FormatRandomNumeric,
	FormatCompactNumeric,
	FormatHybrid,
}

// Valid — поддерживается ли формат.
func (f Format) Valid() bool {
	return slices.Contains(Formats, f)
}

// Значения по умолчанию для OrderNumberConfig.
const (
	DefaultPrefix         = "ORD"
	DefaultSequenceLength = 4
	DefaultRandomLength   = 6
)

// OrderNumberConfig — неизменяемый вход одного вызова генератора.
type OrderNumberConfig struct {
	Format         Format `json:"format"`
	OutletID       int64  `json:"outlet_id"`
	Prefix         string `json:"prefix"`
	SequenceLength int    `json:"sequence_length"`
	RandomLength   int    `json:"random_length"`
	NumericOnly    bool   `json:"numeric_only"`
}

// WithDefaults — копия конфига с заполненными пустыми полями.
func (c OrderNumberConfig) WithDefaults() OrderNumberConfig {
	if c.Format == "" {
		c.Format = FormatSequential
	}
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.SequenceLength <= 0 {
		c.SequenceLength = DefaultSequenceLength
	}
	if c.RandomLength <= 0 {
		c.RandomLength = DefaultRandomLength
	}
	return c
}

// NumberOptions — частичные переопределения конфига нумерации (из запроса).
type NumberOptions struct {
	Format         Format `json:"format,omitempty"`
	Prefix         string `json:"prefix,omitempty"`
	SequenceLength int    `json:"sequence_length,omitempty"`
	RandomLength   int    `json:"random_length,omitempty"`
	NumericOnly    *bool  `json:"numeric_only,omitempty"`
}

// Apply — накладывает непустые поля на базовый конфиг.
func (o *NumberOptions) Apply(base OrderNumberConfig) OrderNumberConfig {
	if o == nil {
		return base
	}
	if o.Format != "" {
		base.Format = o.Format
	}
	if o.Prefix != "" {
		base.Prefix = o.Prefix
	}
	if o.SequenceLength > 0 {
		base.SequenceLength = o.SequenceLength
	}
	if o.RandomLength > 0 {
		base.RandomLength = o.RandomLength
	}
	if o.NumericOnly != nil {
		base.NumericOnly = *o.NumericOnly
	}
	return base
}

// GeneratedOrderNumber — результат генерации. Sequence = 0 для несеквентных форматов.
type GeneratedOrderNumber struct {
	OrderNumber string    `json:"order_number"`
	Sequence    int       `json:"sequence"`
	Format      Format    `json:"format"`
	GeneratedAt time.Time `json:"generated_at"`
}

// FormatValidation — результат проверки формата номера.
type FormatValidation struct {
	Valid      bool   `json:"valid"`
	Format     Format `json:"format,omitempty"`
	Sequence   int    `json:"sequence,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

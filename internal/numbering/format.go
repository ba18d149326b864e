package numbering

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

const (
	maxPrefixLength   = 10
	maxSequenceLength = 12
	maxRandomLength   = 32
)

var rePrefix = regexp.MustCompile(`^[A-Z]{1,10}$`)

// ValidateConfig — проверка конфига после WithDefaults.
func ValidateConfig(cfg domain.OrderNumberConfig) error {
	if cfg.OutletID <= 0 {
		return fmt.Errorf("%w: outlet_id must be positive, got %d", domain.ErrInvalidNumberConfig, cfg.OutletID)
	}
	if !rePrefix.MatchString(cfg.Prefix) {
		return fmt.Errorf("%w: prefix must be 1..%d upper-case latin letters, got %q",
			domain.ErrInvalidNumberConfig, maxPrefixLength, cfg.Prefix)
	}
	if cfg.SequenceLength > maxSequenceLength {
		return fmt.Errorf("%w: sequence_length must be <= %d", domain.ErrInvalidNumberConfig, maxSequenceLength)
	}
	if cfg.RandomLength > maxRandomLength {
		return fmt.Errorf("%w: random_length must be <= %d", domain.ErrInvalidNumberConfig, maxRandomLength)
	}
	return nil
}

// ParseSequence — числовой хвост номера после последнего дефиса ("ORD-001-0042" -> 42).
func ParseSequence(orderNumber string) (int, bool) {
	tail := orderNumber[strings.LastIndexByte(orderNumber, '-')+1:]
	if tail == "" || strings.Trim(tail, digits) != "" {
		return 0, false
	}
	n, err := strconv.Atoi(tail)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Шаблоны в порядке проверки: при неоднозначности побеждает первый
// (например, "ORD-001-123456" распознаётся как sequential, а не random-numeric,
// а hybrid с NumericOnly "ORD-001-20261018-4821" — как date-based с Sequence=4821).
var formatPatterns = []struct {
	format  domain.Format
	re      *regexp.Regexp
	dateIdx int // индекс группы с YYYYMMDD, 0 — даты нет
}{
	{domain.FormatSequential, regexp.MustCompile(`^[A-Z]{1,10}-\d{3,}-\d+$`), 0},
	{domain.FormatDateBased, regexp.MustCompile(`^[A-Z]{1,10}-\d{3,}-(\d{8})-\d+$`), 1},
	{domain.FormatHybrid, regexp.MustCompile(`^[A-Z]{1,10}-\d{3,}-(\d{8})-[A-Z0-9]{4}$`), 1},
	{domain.FormatRandom, regexp.MustCompile(`^[A-Z]{1,10}-\d{3,}-[A-Z0-9]+$`), 0},
	{domain.FormatCompactNumeric, regexp.MustCompile(`^[A-Z]{1,10}\d{4,}$`), 0},
}

// DetectFormat — формат, которому соответствует номер.
func DetectFormat(orderNumber string) (domain.Format, bool) {
	for _, p := range formatPatterns {
		m := p.re.FindStringSubmatch(orderNumber)
		if m == nil {
			continue
		}
		if p.dateIdx > 0 {
			if _, err := time.Parse("20060102", m[p.dateIdx]); err != nil {
				continue
			}
		}
		return p.format, true
	}
	return "", false
}

var reCompactDigits = regexp.MustCompile(`^[A-Z]{1,10}(\d+)$`)

// BelongsToOutlet — содержит ли номер id точки в той же записи, что выдаёт генератор:
// сегмент между первым и вторым дефисом или, для compact-numeric, начало цифрового хвоста.
// Для compact id длиннее 3 знаков неоднозначен ("R1000123456" подходит точкам 100 и 1000).
func BelongsToOutlet(orderNumber string, outletID int64) bool {
	if outletID <= 0 {
		return false
	}
	want := outletPart(outletID)

	if parts := strings.SplitN(orderNumber, "-", 3); len(parts) == 3 {
		return parts[1] == want
	}
	m := reCompactDigits.FindStringSubmatch(orderNumber)
	if m == nil {
		return false
	}
	return len(m[1]) > len(want) && strings.HasPrefix(m[1], want)
}

var reLoosePrefix = regexp.MustCompile(`^([A-Za-z]{1,10})`)

// ValidateOrderNumberFormat — проверка номера; для невалидного — подсказка, как исправить.
func ValidateOrderNumberFormat(orderNumber string) domain.FormatValidation {
	if format, ok := DetectFormat(orderNumber); ok {
		res := domain.FormatValidation{Valid: true, Format: format}
		if format == domain.FormatSequential || format == domain.FormatDateBased {
			res.Sequence, _ = ParseSequence(orderNumber)
		}
		return res
	}
	return domain.FormatValidation{Valid: false, Suggestion: suggest(orderNumber)}
}

func suggest(orderNumber string) string {
	trimmed := strings.TrimSpace(orderNumber)
	if trimmed == "" {
		return "order number is empty; expected PREFIX-OUTLET-SEQUENCE, e.g. ORD-001-0001"
	}
	if trimmed != orderNumber {
		if _, ok := DetectFormat(trimmed); ok {
			return fmt.Sprintf("remove surrounding whitespace: %q", trimmed)
		}
	}
	if upper := strings.ToUpper(trimmed); upper != trimmed {
		if _, ok := DetectFormat(upper); ok {
			return fmt.Sprintf("use upper case: %q", upper)
		}
	}

	prefix := domain.DefaultPrefix
	if m := reLoosePrefix.FindStringSubmatch(trimmed); m != nil {
		prefix = strings.ToUpper(m[1])
	}
	return fmt.Sprintf(
		"expected PREFIX-OUTLET-SEQUENCE with a 3+ digit outlet id, e.g. %s-001-0001 "+
			"(or %s-001-YYYYMMDD-0001 for date-based numbers)", prefix, prefix)
}

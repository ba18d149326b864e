package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
	"github.com/Gunvolt24/rentshop_orders/pkg/ctxmeta"
	"github.com/Gunvolt24/rentshop_orders/pkg/metrics"
	"github.com/Gunvolt24/rentshop_orders/pkg/validate"
)

// handleMessage — создаёт заказ по заявке; true, если оффсет нужно закоммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	head := peekRequest(msg.Value)
	ctx = ctxmeta.WithRequestID(ctx, messageID(msg))
	ctx = ctxmeta.WithOutletID(ctx, head.OutletID)

	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.CreateFromMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case isPermanent(err):
		// повтор не поможет: коммитим, чтобы заявка не блокировала партицию
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "order request rejected offset=%d outlet=%d numbering=%s: %v (skipped)",
			msg.Offset, head.OutletID, head.numbering(), err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "order not created offset=%d outlet=%d numbering=%s: %v (will retry without commit)",
			msg.Offset, head.OutletID, head.numbering(), err)
		return false
	}
}

// requestHead — поля заявки, нужные только для логов. Строгий разбор делает сервис.
type requestHead struct {
	OutletID    int64  `json:"outlet_id"`
	OrderNumber string `json:"order_number"`
	Number      *struct {
		Format domain.Format `json:"format"`
	} `json:"number"`
}

// peekRequest — нестрогий разбор заявки; для битого JSON — пустая голова.
func peekRequest(raw []byte) requestHead {
	var h requestHead
	if err := json.Unmarshal(raw, &h); err != nil {
		return requestHead{}
	}
	return h
}

// numbering — как заявка получает номер: заранее присвоенный, формат из заявки или из настроек сервиса.
func (h requestHead) numbering() string {
	switch {
	case h.OrderNumber != "":
		return "pre-assigned:" + h.OrderNumber
	case h.Number != nil && h.Number.Format != "":
		return string(h.Number.Format)
	default:
		return "default"
	}
}

// isPermanent — ошибка, которую повторная обработка не исправит.
func isPermanent(err error) bool {
	return errors.Is(err, validate.ErrInvalidOrder) ||
		errors.Is(err, domain.ErrOutletNotFound) ||
		errors.Is(err, domain.ErrInvalidNumberConfig) ||
		errors.Is(err, domain.ErrUnknownFormat) ||
		errors.Is(err, domain.ErrDuplicateOrderNumber)
}

// messageID — идентификатор сообщения для логов: ключ, а без него partition/offset.
func messageID(msg *kafka.Message) string {
	if len(msg.Key) > 0 {
		return string(msg.Key)
	}
	return fmt.Sprintf("kafka-%d-%d", msg.Partition, msg.Offset)
}

// commitSafely — коммит оффсета; ошибка только логируется: заказ уже создан,
// а повторная доставка упрётся в уникальность номера или создаст следующий номер серии.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit order request failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — умеренная случайность: половина задержки фиксирована,
// вторая половина — случайная. Баланс между стабильностью и случайностью.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

// minDuration возвращает минимальное время из двух.
func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

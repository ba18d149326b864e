package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/rentshop_orders/internal/ports"
	"github.com/Gunvolt24/rentshop_orders/pkg/metrics"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что нужно от kafka.Reader; в тестах подменяется моком.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// orderCreator — разбирает заявку, выдаёт номер и создаёт заказ.
type orderCreator interface {
	CreateFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — читает заявки на создание заказов из топика и коммитит оффсет
// только после того, как заказ создан или заявка признана негодной навсегда.
type Consumer struct {
	reader         reader
	service        orderCreator
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

func NewConsumer(cfg *ConsumerConfig, service orderCreator, log ports.Logger) *Consumer {
	c := cfg.WithDefaults()
	return &Consumer{
		reader:         kafka.NewReader(c.ReaderConfig()),
		service:        service,
		log:            log,
		processTimeout: c.ProcessTimeout,
		retryInitial:   c.RetryInitial,
		retryMax:       c.RetryMax,
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — цикл до отмены ctx:
//   - заказ создан -> коммит;
//   - заявка негодна (битый JSON, чужой номер, нет точки, дубль) -> лог и коммит;
//   - временная ошибка (БД, таймаут, номера кончились) -> без коммита, сообщение придёт снова.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "order requests consumer started topic=%s group_id=%s brokers=%v process_timeout=%s",
		rc.Topic, rc.GroupID, rc.Brokers, c.processTimeout)

	backoff := c.retryInitial
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := c.withJitterEqual(backoff)
			c.log.Warnf(ctx, "fetch order request failed topic=%s: %v (retry in %s)", rc.Topic, err, wait)
			if !c.sleepWithBackoff(ctx, wait) {
				return ctx.Err()
			}
			backoff = c.nextBackoff(backoff)
			continue
		}
		backoff = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handleMessage(ctx, rc.Topic, &msg) {
			c.commitSafely(ctx, &msg)
			continue
		}
		// пауза перед повтором той же заявки, чтобы не долбить лежащую БД
		_ = c.sleepWithBackoff(ctx, c.withJitterEqual(minDuration(c.retryInitial, 500*time.Millisecond)))
	}
}

// Close — закрывает reader; повторные вызовы ничего не делают.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}

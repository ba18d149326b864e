package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
)

// ConsumerConfig — параметры чтения топика заявок на создание заказов.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // "first" | "last" (по умолчанию)

	ProcessTimeout time.Duration // таймаут создания одного заказа, включая выдачу номера
	RetryInitial   time.Duration // стартовая пауза backoff
	RetryMax       time.Duration // верхняя граница backoff
}

// WithDefaults — копия конфига с заполненными таймаутами.
// ProcessTimeout должен покрывать все попытки sequential-нумерации вместе с паузами.
func (c ConsumerConfig) WithDefaults() ConsumerConfig {
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = defaultProcessTimeout
	}
	if c.RetryInitial <= 0 {
		c.RetryInitial = defaultRetryInitial
	}
	if c.RetryMax <= 0 {
		c.RetryMax = defaultRetryMax
	}
	if c.RetryMax < c.RetryInitial {
		c.RetryMax = c.RetryInitial
	}
	return c
}

// ReaderConfig — конфиг kafka.Reader с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
		StartOffset:    kafka.LastOffset,
	}
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	}
	return rc
}

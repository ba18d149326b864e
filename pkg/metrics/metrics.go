package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of order requests fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of order requests processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of order requests failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outlet_cache_operations_total",
			Help: "Outlet cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "outlet_cache_size",
			Help: "Number of outlets currently in cache",
		},
	)
)

var (
	OrderNumbersGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_numbers_generated_total",
			Help: "Number of unique order numbers produced",
		},
		[]string{"format"},
	)
	OrderNumberCollisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_number_collisions_total",
			Help: "Number of generated candidates that were already taken",
		},
		[]string{"format"},
	)
	OrderNumberRetryExhausted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_number_retry_exhausted_total",
			Help: "Number of generations that ran out of attempts",
		},
		[]string{"format"},
	)
	OrderNumberDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_number_generation_seconds",
			Help:    "Order number generation latency including retries",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5},
		},
		[]string{"format"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
			OrderNumbersGenerated, OrderNumberCollisions, OrderNumberRetryExhausted, OrderNumberDuration,
		)
	})
}

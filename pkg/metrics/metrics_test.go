package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/rentshop_orders/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("order-requests"))
	beforeProcessed := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("order-requests"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("order-requests"))

	metrics.KafkaMessagesConsumed.WithLabelValues("order-requests").Inc()
	metrics.KafkaMessagesProcessed.WithLabelValues("order-requests").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("order-requests").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("order-requests")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("order-requests")); got != beforeProcessed+1 {
		t.Fatalf("KafkaMessagesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("order-requests")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss"))

	metrics.CacheOps.WithLabelValues("hit").Inc()
	metrics.CacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}

func TestOrderNumberCounters_ByFormat(t *testing.T) {
	metrics.MustRegister()

	genBefore := testutil.ToFloat64(metrics.OrderNumbersGenerated.WithLabelValues("sequential"))
	colBefore := testutil.ToFloat64(metrics.OrderNumberCollisions.WithLabelValues("sequential"))
	hybridBefore := testutil.ToFloat64(metrics.OrderNumbersGenerated.WithLabelValues("hybrid"))

	metrics.OrderNumbersGenerated.WithLabelValues("sequential").Inc()
	metrics.OrderNumberCollisions.WithLabelValues("sequential").Add(3)

	if got := testutil.ToFloat64(metrics.OrderNumbersGenerated.WithLabelValues("sequential")); got != genBefore+1 {
		t.Fatalf("OrderNumbersGenerated(sequential): got=%v want=%v", got, genBefore+1)
	}
	if got := testutil.ToFloat64(metrics.OrderNumberCollisions.WithLabelValues("sequential")); got != colBefore+3 {
		t.Fatalf("OrderNumberCollisions(sequential): got=%v want=%v", got, colBefore+3)
	}
	if got := testutil.ToFloat64(metrics.OrderNumbersGenerated.WithLabelValues("hybrid")); got != hybridBefore {
		t.Fatalf("OrderNumbersGenerated(hybrid) must not change: got=%v want=%v", got, hybridBefore)
	}
}

func TestOrderNumberDuration_Observe(t *testing.T) {
	metrics.MustRegister()

	before := testutil.CollectAndCount(metrics.OrderNumberDuration)
	metrics.OrderNumberDuration.WithLabelValues("duration-test").Observe(0.002)
	if got := testutil.CollectAndCount(metrics.OrderNumberDuration); got != before+1 {
		t.Fatalf("OrderNumberDuration series: got=%d want=%d", got, before+1)
	}
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// InventoryMetrics records item lifecycle and expiry-check counters.
// A zero value (or nil) is valid and records nothing.
type InventoryMetrics struct {
	created  prometheus.Counter
	disposed *prometheus.CounterVec
	checks   prometheus.Counter
	expiring prometheus.Gauge
	failures *prometheus.CounterVec
}

// NewInventoryMetrics registers the inventory metrics on the provided registerer.
func NewInventoryMetrics(reg prometheus.Registerer) *InventoryMetrics {
	if reg == nil {
		return &InventoryMetrics{}
	}
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stock_items_created_total",
		Help: "Items added to the inventory.",
	})
	disposed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_items_disposed_total",
		Help: "Items removed from the inventory, by outcome.",
	}, []string{"outcome"})
	checks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stock_expiry_checks_total",
		Help: "Expiry window queries executed.",
	})
	expiring := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "stock_items_expiring",
		Help: "Items found by the most recent expiry window query.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_operation_failures_total",
		Help: "Failed inventory operations, by operation.",
	}, []string{"operation"})
	reg.MustRegister(created, disposed, checks, expiring, failures)
	return &InventoryMetrics{
		created:  created,
		disposed: disposed,
		checks:   checks,
		expiring: expiring,
		failures: failures,
	}
}

func (m *InventoryMetrics) ItemCreated() {
	if m == nil || m.created == nil {
		return
	}
	m.created.Inc()
}

func (m *InventoryMetrics) ItemDisposed(outcome string) {
	if m == nil || m.disposed == nil {
		return
	}
	m.disposed.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ExpiryChecked counts a query and remembers how many items it returned.
func (m *InventoryMetrics) ExpiryChecked(found int) {
	if m == nil || m.checks == nil {
		return
	}
	m.checks.Inc()
	m.expiring.Set(float64(found))
}

func (m *InventoryMetrics) OperationFailed(operation string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

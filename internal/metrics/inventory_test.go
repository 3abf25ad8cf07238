package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInventoryMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewInventoryMetrics(reg)

	m.ItemCreated()
	m.ItemCreated()
	m.ItemDisposed("wasted")
	m.ItemDisposed("")
	m.ExpiryChecked(3)
	m.ExpiryChecked(1)
	m.OperationFailed("dispose")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.created))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.disposed.WithLabelValues("wasted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.disposed.WithLabelValues("unknown")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.checks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.expiring))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("dispose")))

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestInventoryMetrics_NilSafe(t *testing.T) {
	var m *InventoryMetrics
	assert.NotPanics(t, func() {
		m.ItemCreated()
		m.ItemDisposed("consumed")
		m.ExpiryChecked(2)
		m.OperationFailed("create")
	})

	empty := NewInventoryMetrics(nil)
	assert.NotPanics(t, func() {
		empty.ItemCreated()
		empty.ExpiryChecked(0)
	})
}

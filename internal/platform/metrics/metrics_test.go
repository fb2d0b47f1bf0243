package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.InvoiceCreated("discharge")
	m.InvoiceCreated("discharge")
	m.InvoiceIncremented()
	m.PetStatusRecorded("Confined")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InvoicesCreated.WithLabelValues("discharge")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvoiceIncrements))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PetStatusEvents.WithLabelValues("Confined")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.InvoiceCreated("manual")
	m.WalkInProcessed()
	m.TreatmentRecorded()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vet_clinic"

// Metrics agrupa los contadores del ledger. Se registran en un registry propio
// (no en el global) para poder crear varios routers en tests.
type Metrics struct {
	InvoicesCreated    *prometheus.CounterVec
	InvoiceIncrements  prometheus.Counter
	PetStatusEvents    *prometheus.CounterVec
	WalkInsProcessed   prometheus.Counter
	TreatmentsRecorded prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		InvoicesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_created_total",
			Help:      "Invoices created, by origin (treatment, discharge, manual).",
		}, []string{"origin"}),
		InvoiceIncrements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_increments_total",
			Help:      "Treatment costs added to an existing unpaid invoice.",
		}),
		PetStatusEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pet_status_events_total",
			Help:      "Pet status events appended to the ledger, by status.",
		}, []string{"status"}),
		WalkInsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "walkins_processed_total",
			Help:      "Walk-ins normalized into client, animal and appointment records.",
		}),
		TreatmentsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "treatments_recorded_total",
			Help:      "Treatments recorded.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.InvoicesCreated,
			m.InvoiceIncrements,
			m.PetStatusEvents,
			m.WalkInsProcessed,
			m.TreatmentsRecorded,
		)
	}
	return m
}

// Los métodos son nil-safe: los services los llaman sin chequear.

func (m *Metrics) InvoiceCreated(origin string) {
	if m == nil {
		return
	}
	m.InvoicesCreated.WithLabelValues(origin).Inc()
}

func (m *Metrics) InvoiceIncremented() {
	if m == nil {
		return
	}
	m.InvoiceIncrements.Inc()
}

func (m *Metrics) PetStatusRecorded(status string) {
	if m == nil {
		return
	}
	m.PetStatusEvents.WithLabelValues(status).Inc()
}

func (m *Metrics) WalkInProcessed() {
	if m == nil {
		return
	}
	m.WalkInsProcessed.Inc()
}

func (m *Metrics) TreatmentRecorded() {
	if m == nil {
		return
	}
	m.TreatmentsRecorded.Inc()
}

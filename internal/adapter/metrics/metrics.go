package metrics

import (
	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
	"github.com/prometheus/client_golang/prometheus"
)

var _ port.OrderObserver = (*OrderMetrics)(nil)

// OrderMetrics counts ledger outcomes.
type OrderMetrics struct {
	admitted prometheus.Counter
	rejected *prometheus.CounterVec
	deleted  prometheus.Counter
	invoices prometheus.Counter
}

func NewOrderMetrics(registerer prometheus.Registerer) (*OrderMetrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &OrderMetrics{
		admitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studiodesk_orders_admitted_total",
			Help: "Orders admitted by the capacity policy and stored",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "studiodesk_orders_rejected_total",
			Help: "Orders refused by the capacity policy",
		}, []string{"reason"}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studiodesk_orders_deleted_total",
			Help: "Orders deleted together with their lines",
		}),
		invoices: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studiodesk_invoices_built_total",
			Help: "Invoices projected on request",
		}),
	}

	for _, c := range []prometheus.Collector{m.admitted, m.rejected, m.deleted, m.invoices} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *OrderMetrics) OrderAdmitted() {
	m.admitted.Inc()
}

func (m *OrderMetrics) OrderRejected(reason domain.CapacityReason) {
	m.rejected.WithLabelValues(string(reason)).Inc()
}

func (m *OrderMetrics) OrderDeleted() {
	m.deleted.Inc()
}

func (m *OrderMetrics) InvoiceBuilt() {
	m.invoices.Inc()
}

package metrics

import (
	"time"

	"github.com/jhoicas/papelaria/internal/application/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ ports.SalesMetrics = (*Metrics)(nil)

// Metrics observabilidad del motor de ventas y de los registros.
type Metrics struct {
	SalesTotal         prometheus.Counter
	UnitsSoldTotal     prometheus.Counter
	SalesRejectedTotal *prometheus.CounterVec
	RegistrationsTotal *prometheus.CounterVec
	SaleDuration       prometheus.Histogram
}

// New registra las métricas en reg (prometheus.DefaultRegisterer si es nil).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		SalesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "papelaria_sales_total",
			Help: "Total de ventas confirmadas",
		}),
		UnitsSoldTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "papelaria_units_sold_total",
			Help: "Unidades vendidas en ventas confirmadas",
		}),
		SalesRejectedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "papelaria_sales_rejected_total",
			Help: "Ventas abortadas por motivo",
		}, []string{"reason"}),
		RegistrationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "papelaria_registrations_total",
			Help: "Altas de clientes y productos",
		}, []string{"kind"}),
		SaleDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "papelaria_sale_duration_seconds",
			Help:    "Duración de la transacción de venta",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 3},
		}),
	}
}

// ObserveSale registra una venta confirmada.
func (m *Metrics) ObserveSale(quantity int64, started time.Time) {
	m.SalesTotal.Inc()
	m.UnitsSoldTotal.Add(float64(quantity))
	m.SaleDuration.Observe(time.Since(started).Seconds())
}

// ObserveRejectedSale registra una venta abortada.
func (m *Metrics) ObserveRejectedSale(reason string) {
	m.SalesRejectedTotal.WithLabelValues(reason).Inc()
}

// ObserveRegistration registra un alta.
func (m *Metrics) ObserveRegistration(kind string) {
	m.RegistrationsTotal.WithLabelValues(kind).Inc()
}

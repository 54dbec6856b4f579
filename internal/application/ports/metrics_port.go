package ports

import "time"

// SalesMetrics define el puerto de salida para observabilidad del motor de ventas.
// El adaptador Prometheus vive en infrastructure/metrics; NopMetrics sirve para tests.
type SalesMetrics interface {
	// ObserveSale registra una venta confirmada con su cantidad y la duración de la transacción.
	ObserveSale(quantity int64, started time.Time)
	// ObserveRejectedSale registra una venta abortada; reason es un código corto (p. ej. "insufficient_stock").
	ObserveRejectedSale(reason string)
	// ObserveRegistration registra el alta de un cliente o producto; kind es "customer" o "product".
	ObserveRegistration(kind string)
}

// NopMetrics implementación vacía de SalesMetrics.
type NopMetrics struct{}

func (NopMetrics) ObserveSale(int64, time.Time) {}
func (NopMetrics) ObserveRejectedSale(string)   {}
func (NopMetrics) ObserveRegistration(string)   {}

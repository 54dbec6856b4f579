package entity

import "time"

// Customer representa un cliente identificado por su CPF (NationalID, clave natural).
// PurchasedQuantity solo cambia al registrar una venta.
type Customer struct {
	ID                int64
	NationalID        string
	Name              string
	Email             string
	Phone             string // solo dígitos
	PurchasedQuantity int64
	CreatedAt         time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo a la venta. Name no es único.
// Price es informativo; Stock solo se modifica al registrar una venta y nunca queda negativo.
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Stock     int64
	CreatedAt time.Time
}

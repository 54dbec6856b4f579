package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterProductRequest entrada para registrar un producto.
type RegisterProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductListResponse candidatos de una búsqueda por nombre.
type ProductListResponse struct {
	Items []*ProductResponse `json:"items"`
}

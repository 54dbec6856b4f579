package dto

import "time"

// SellRequest entrada para registrar una venta.
type SellRequest struct {
	ProductID          int64  `json:"product_id"`
	CustomerNationalID string `json:"customer_national_id"`
	Quantity           int64  `json:"quantity"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID                 int64     `json:"id"`
	TransactionID      string    `json:"transaction_id"`
	CustomerNationalID string    `json:"customer_national_id"`
	ProductID          int64     `json:"product_id"`
	Quantity           int64     `json:"quantity"`
	CreatedAt          time.Time `json:"created_at"`
}

// SaleListResponse ventas de un cliente.
type SaleListResponse struct {
	Items []*SaleResponse `json:"items"`
}

package dto

import "time"

// RegisterCustomerRequest entrada para registrar un cliente.
type RegisterCustomerRequest struct {
	NationalID string `json:"national_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID                int64     `json:"id"`
	NationalID        string    `json:"national_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone"`
	PurchasedQuantity int64     `json:"purchased_quantity"`
	CreatedAt         time.Time `json:"created_at"`
}

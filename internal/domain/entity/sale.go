package entity

import "time"

// Sale registro inmutable de una venta. CustomerNationalID referencia Customer.NationalID;
// ProductID referencia Product.ID.
type Sale struct {
	ID                 int64
	TransactionID      string
	CustomerNationalID string
	ProductID          int64
	Quantity           int64
	CreatedAt          time.Time
}

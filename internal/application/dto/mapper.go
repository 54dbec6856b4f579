package dto

import "github.com/jhoicas/papelaria/internal/domain/entity"

// FromCustomer construye la respuesta a partir de la entidad.
func FromCustomer(c *entity.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:                c.ID,
		NationalID:        c.NationalID,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		PurchasedQuantity: c.PurchasedQuantity,
		CreatedAt:         c.CreatedAt,
	}
}

// FromProduct construye la respuesta a partir de la entidad.
func FromProduct(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}

// FromProducts convierte una lista de productos; nunca devuelve nil.
func FromProducts(list []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromSale construye la respuesta a partir de la entidad.
func FromSale(s *entity.Sale) *SaleResponse {
	return &SaleResponse{
		ID:                 s.ID,
		TransactionID:      s.TransactionID,
		CustomerNationalID: s.CustomerNationalID,
		ProductID:          s.ProductID,
		Quantity:           s.Quantity,
		CreatedAt:          s.CreatedAt,
	}
}

package repository

import (
	"context"

	"github.com/jhoicas/papelaria/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// La unicidad de NationalID la garantiza el almacenamiento: Create devuelve domain.ErrDuplicate.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByNationalID(ctx context.Context, nationalID string) (*entity.Customer, error)
	// AddPurchasedQuantity suma qty al acumulado del cliente; domain.ErrNotFound si no existe.
	AddPurchasedQuantity(ctx context.Context, nationalID string, qty int64) error
}

package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/entity"
	"github.com/jhoicas/papelaria/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	store *Store
	tx    *state
}

// Create asigna ID y persiste el cliente; NationalID repetido devuelve domain.ErrDuplicate.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return r.store.with(ctx, r.tx, func(st *state) error {
		if _, ok := st.customers[customer.NationalID]; ok {
			return fmt.Errorf("%w: CPF %s ya registrado", domain.ErrDuplicate, customer.NationalID)
		}
		if customer.PurchasedQuantity < 0 {
			return domain.StorageError("insert customer", errCheck)
		}
		st.nextCustomerID++
		customer.ID = st.nextCustomerID
		cp := *customer
		st.customers[customer.NationalID] = &cp
		return nil
	})
}

// GetByNationalID obtiene un cliente por CPF.
func (r *CustomerRepo) GetByNationalID(ctx context.Context, nationalID string) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.store.with(ctx, r.tx, func(st *state) error {
		c, ok := st.customers[nationalID]
		if !ok {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, nationalID)
		}
		cp := *c
		out = &cp
		return nil
	})
	return out, err
}

// AddPurchasedQuantity suma qty al acumulado del cliente.
func (r *CustomerRepo) AddPurchasedQuantity(ctx context.Context, nationalID string, qty int64) error {
	return r.store.with(ctx, r.tx, func(st *state) error {
		c, ok := st.customers[nationalID]
		if !ok {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, nationalID)
		}
		if c.PurchasedQuantity+qty < 0 {
			return domain.StorageError("update purchased_quantity", errCheck)
		}
		c.PurchasedQuantity += qty
		return nil
	})
}

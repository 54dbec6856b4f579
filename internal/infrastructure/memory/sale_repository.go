package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/entity"
	"github.com/jhoicas/papelaria/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación en memoria de SaleRepository (solo inserción).
type SaleRepo struct {
	store *Store
	tx    *state
}

// Create asigna ID y agrega la venta; cliente y producto deben existir.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	return r.store.with(ctx, r.tx, func(st *state) error {
		if _, ok := st.customers[sale.CustomerNationalID]; !ok {
			return domain.StorageError("insert sale", fmt.Errorf("%w: cliente %s", errForeignKey, sale.CustomerNationalID))
		}
		if _, ok := st.products[sale.ProductID]; !ok {
			return domain.StorageError("insert sale", fmt.Errorf("%w: producto %d", errForeignKey, sale.ProductID))
		}
		if sale.Quantity <= 0 {
			return domain.StorageError("insert sale", errCheck)
		}
		st.nextSaleID++
		sale.ID = st.nextSaleID
		cp := *sale
		st.sales = append(st.sales, &cp)
		return nil
	})
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var out *entity.Sale
	err := r.store.with(ctx, r.tx, func(st *state) error {
		for _, s := range st.sales {
			if s.ID == id {
				cp := *s
				out = &cp
				return nil
			}
		}
		return fmt.Errorf("%w: venta %d", domain.ErrNotFound, id)
	})
	return out, err
}

// ListByCustomer ventas del cliente en orden de ID.
func (r *SaleRepo) ListByCustomer(ctx context.Context, nationalID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	err := r.store.with(ctx, r.tx, func(st *state) error {
		for _, s := range st.sales {
			if s.CustomerNationalID == nationalID {
				cp := *s
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

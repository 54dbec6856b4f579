package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/entity"
	"github.com/jhoicas/papelaria/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	store *Store
	tx    *state
}

// Create asigna ID y persiste el producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return r.store.with(ctx, r.tx, func(st *state) error {
		if product.Stock < 0 {
			return domain.StorageError("insert product", errCheck)
		}
		st.nextProductID++
		product.ID = st.nextProductID
		cp := *product
		st.products[product.ID] = &cp
		return nil
	})
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.store.with(ctx, r.tx, func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		cp := *p
		out = &cp
		return nil
	})
	return out, err
}

// GetForUpdate dentro de una transacción el bloqueo del registro ya está tomado.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// DecrementStock resta qty solo si alcanza el stock.
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int64) error {
	return r.store.with(ctx, r.tx, func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		if qty <= 0 {
			return domain.StorageError("update stock", errCheck)
		}
		if p.Stock < qty {
			return fmt.Errorf("%w: solicitado %d, disponible %d", domain.ErrInsufficientStock, qty, p.Stock)
		}
		p.Stock -= qty
		return nil
	})
}

// SearchByName coincidencia por subcadena con plegado de mayúsculas Unicode, ordenado por ID.
func (r *ProductRepo) SearchByName(ctx context.Context, fragment string) ([]*entity.Product, error) {
	folder := cases.Fold()
	needle := folder.String(fragment)
	var out []*entity.Product
	err := r.store.with(ctx, r.tx, func(st *state) error {
		for _, p := range st.products {
			if strings.Contains(folder.String(p.Name), needle) {
				cp := *p
				out = append(out, &cp)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

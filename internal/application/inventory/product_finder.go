package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/papelaria/internal/application/dto"
	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/repository"
)

// ProductFinder resuelve un fragmento de nombre a los productos candidatos para una venta.
// La elección entre candidatos la hace el llamador.
type ProductFinder struct {
	repo repository.ProductRepository
}

// NewProductFinder construye el buscador.
func NewProductFinder(repo repository.ProductRepository) *ProductFinder {
	return &ProductFinder{repo: repo}
}

// Find devuelve los candidatos ordenados por ID, o domain.ErrNoMatch si no hay ninguno.
// El stock mostrado puede quedar desactualizado; Sell lo vuelve a verificar bajo bloqueo.
func (f *ProductFinder) Find(ctx context.Context, fragment string) ([]*dto.ProductResponse, error) {
	list, err := f.repo.SearchByName(ctx, fragment)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrNoMatch, fragment)
	}
	return dto.FromProducts(list), nil
}

package inventory

import (
	"context"

	"github.com/jhoicas/papelaria/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacenamiento, pasando repositorios
// atados a esa transacción. Si fn devuelve error no queda ningún efecto visible (Rollback);
// si no, los tres repositorios confirman juntos (Commit).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

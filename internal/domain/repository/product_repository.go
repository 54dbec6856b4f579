package repository

import (
	"context"

	"github.com/jhoicas/papelaria/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// DecrementStock resta qty solo si stock >= qty; si no, domain.ErrInsufficientStock.
	DecrementStock(ctx context.Context, id int64, qty int64) error
	// SearchByName coincidencia por subcadena sin distinguir mayúsculas, ordenado por ID.
	SearchByName(ctx context.Context, fragment string) ([]*entity.Product, error)
}

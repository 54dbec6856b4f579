package repository

import (
	"context"

	"github.com/jhoicas/papelaria/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para el registro de ventas (solo inserción).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	ListByCustomer(ctx context.Context, nationalID string) ([]*entity.Sale, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/entity"
	"github.com/jhoicas/papelaria/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (solo inserción; usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create agrega una venta. Las claves foráneas a customers y products las verifica la base.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (transaction_id, customer_national_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sale.TransactionID, sale.CustomerNationalID, sale.ProductID, sale.Quantity, sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return translate("insert sale", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	query := `
		SELECT id, transaction_id, customer_national_id, product_id, quantity, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.TransactionID, &s.CustomerNationalID, &s.ProductID, &s.Quantity, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: venta %d", domain.ErrNotFound, id)
		}
		return nil, translate("get sale", err)
	}
	return &s, nil
}

// ListByCustomer ventas del cliente en orden de ID.
func (r *SaleRepo) ListByCustomer(ctx context.Context, nationalID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, transaction_id, customer_national_id, product_id, quantity, created_at
		FROM sales WHERE customer_national_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, nationalID)
	if err != nil {
		return nil, translate("list sales", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.TransactionID, &s.CustomerNationalID, &s.ProductID, &s.Quantity, &s.CreatedAt); err != nil {
			return nil, translate("scan sale", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list sales", err)
	}
	return list, nil
}

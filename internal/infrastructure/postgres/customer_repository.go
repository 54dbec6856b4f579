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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente; la restricción única de national_id rechaza duplicados al insertar.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (national_id, name, email, phone, purchased_quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		customer.NationalID, customer.Name, customer.Email, customer.Phone,
		customer.PurchasedQuantity, customer.CreatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: CPF %s ya registrado", domain.ErrDuplicate, customer.NationalID)
		}
		return translate("insert customer", err)
	}
	return nil
}

// GetByNationalID obtiene un cliente por CPF.
func (r *CustomerRepo) GetByNationalID(ctx context.Context, nationalID string) (*entity.Customer, error) {
	query := `
		SELECT id, national_id, name, email, phone, purchased_quantity, created_at
		FROM customers WHERE national_id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, nationalID).Scan(
		&c.ID, &c.NationalID, &c.Name, &c.Email, &c.Phone, &c.PurchasedQuantity, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, nationalID)
		}
		return nil, translate("get customer", err)
	}
	return &c, nil
}

// AddPurchasedQuantity suma qty al acumulado del cliente.
func (r *CustomerRepo) AddPurchasedQuantity(ctx context.Context, nationalID string, qty int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE customers SET purchased_quantity = purchased_quantity + $2 WHERE national_id = $1`,
		nationalID, qty,
	)
	if err != nil {
		return translate("update purchased_quantity", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, nationalID)
	}
	return nil
}

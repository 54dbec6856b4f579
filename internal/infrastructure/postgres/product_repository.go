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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, price, stock, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, product.Name, product.Price, product.Stock, product.CreatedAt).Scan(&product.ID)
	if err != nil {
		return translate("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, "get product", `
		SELECT id, name, price, stock, created_at
		FROM products WHERE id = $1`, id)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE) hasta el fin de la transacción.
// Sujeto a lock_timeout: si el bloqueo no llega a tiempo devuelve domain.ErrTransient.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, "get product for update", `
		SELECT id, name, price, stock, created_at
		FROM products WHERE id = $1
		FOR UPDATE`, id)
}

func (r *ProductRepo) get(ctx context.Context, op, query string, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		return nil, translate(op, err)
	}
	return &p, nil
}

// DecrementStock resta qty solo si stock >= qty (compare-and-set en la misma sentencia).
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int64) error {
	var stock int64
	err := r.q.QueryRow(ctx,
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2 RETURNING stock`,
		id, qty,
	).Scan(&stock)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return translate("update stock", err)
	}
	var current int64
	err = r.q.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}
		return translate("update stock", err)
	}
	return fmt.Errorf("%w: solicitado %d, disponible %d", domain.ErrInsufficientStock, qty, current)
}

// SearchByName coincidencia por subcadena (ILIKE) sin distinguir mayúsculas, ordenado por ID.
// %, _ y \ en fragment se buscan de forma literal.
func (r *ProductRepo) SearchByName(ctx context.Context, fragment string) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, created_at
		FROM products WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, likeContains(fragment))
	if err != nil {
		return nil, translate("search products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, translate("scan product", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("search products", err)
	}
	return list, nil
}

// Package memory implementa el registro embebido en proceso: clientes, productos y ventas
// bajo un único bloqueo con espera acotada. Las transacciones trabajan sobre una copia del
// estado que reemplaza al estado vivo solo al confirmar.
package memory

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/papelaria/internal/application/inventory"
	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/entity"
	"github.com/jhoicas/papelaria/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

var (
	errLockTimeout = errors.New("tiempo de espera del bloqueo agotado")
	errForeignKey  = errors.New("violación de clave foránea")
	errCheck       = errors.New("violación de restricción check")
)

// DefaultLockTimeout espera por el bloqueo del registro si no se indica otra.
const DefaultLockTimeout = 3 * time.Second

type state struct {
	nextCustomerID int64
	nextProductID  int64
	nextSaleID     int64
	customers      map[string]*entity.Customer // por NationalID
	products       map[int64]*entity.Product
	sales          []*entity.Sale // orden de inserción = orden de ID
}

func newState() *state {
	return &state{
		customers: make(map[string]*entity.Customer),
		products:  make(map[int64]*entity.Product),
	}
}

// clone copia clientes y productos (mutables). Las ventas son inmutables y se comparten.
func (s *state) clone() *state {
	c := &state{
		nextCustomerID: s.nextCustomerID,
		nextProductID:  s.nextProductID,
		nextSaleID:     s.nextSaleID,
		customers:      make(map[string]*entity.Customer, len(s.customers)),
		products:       make(map[int64]*entity.Product, len(s.products)),
		sales:          make([]*entity.Sale, len(s.sales), len(s.sales)+1),
	}
	for k, v := range s.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	copy(c.sales, s.sales)
	return c
}

// Store registro en memoria. Usar NewStore.
type Store struct {
	sem         chan struct{}
	lockTimeout time.Duration
	st          *state
}

// NewStore crea un registro vacío. lockTimeout <= 0 usa DefaultLockTimeout.
func NewStore(lockTimeout time.Duration) *Store {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &Store{
		sem:         make(chan struct{}, 1),
		lockTimeout: lockTimeout,
		st:          newState(),
	}
}

// Customers repositorio de clientes fuera de transacción.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{store: s} }

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{store: s} }

// Sales repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{store: s} }

// Run ejecuta fn con repositorios atados a una copia del estado; si fn no falla
// la copia pasa a ser el estado vivo, si falla se descarta.
func (s *Store) Run(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	work := s.st.clone()
	if err := fn(
		&CustomerRepo{store: s, tx: work},
		&ProductRepo{store: s, tx: work},
		&SaleRepo{store: s, tx: work},
	); err != nil {
		return err
	}
	s.st = work
	return nil
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	default:
	}
	timer := time.NewTimer(s.lockTimeout)
	defer timer.Stop()
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return domain.StorageError("memory lock", ctx.Err())
	case <-timer.C:
		return domain.TransientError("memory lock", errLockTimeout)
	}
}

func (s *Store) release() { <-s.sem }

// with ejecuta fn sobre el estado de la transacción tx o, si tx es nil, sobre el estado vivo
// bajo el bloqueo. fn debe validar antes de mutar.
func (s *Store) with(ctx context.Context, tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	return fn(s.st)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/papelaria/internal/application/inventory"
	"github.com/jhoicas/papelaria/internal/domain"
	"github.com/jhoicas/papelaria/internal/domain/repository"
	"github.com/jhoicas/papelaria/pkg/logger"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxOptions política de bloqueo y reintentos de TxRunner.
type TxOptions struct {
	LockTimeout time.Duration // lock_timeout de la transacción; 0 = sin límite del servidor
	Retries     int           // reintentos ante domain.ErrTransient
	Backoff     time.Duration // espera base entre reintentos (lineal)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
	opts TxOptions
	log  *logger.Logger
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool, opts TxOptions, log *logger.Logger) *TxRunner {
	if opts.Backoff <= 0 {
		opts.Backoff = 25 * time.Millisecond
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TxRunner{pool: pool, opts: opts, log: log.Component("postgres")}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Si la transacción falla por bloqueo, serialización o deadlock se reintenta completa
// hasta opts.Retries veces; agotados los reintentos se devuelve el error transitorio.
func (r *TxRunner) Run(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	for attempt := 0; ; attempt++ {
		err := r.runOnce(ctx, fn)
		if err == nil || !errors.Is(err, domain.ErrTransient) || attempt >= r.opts.Retries {
			return err
		}
		r.log.Warn().Err(err).Int("attempt", attempt+1).Msg("transacción reintentada")

		wait := time.NewTimer(r.opts.Backoff * time.Duration(attempt+1))
		select {
		case <-ctx.Done():
			wait.Stop()
			return err
		case <-wait.C:
		}
	}
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return translate("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if r.opts.LockTimeout > 0 {
		ms := fmt.Sprintf("%dms", r.opts.LockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`, ms); err != nil {
			return translate("set lock_timeout", err)
		}
	}

	if err := fn(NewCustomerRepository(tx), NewProductRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return translate("commit transaction", err)
	}
	return nil
}

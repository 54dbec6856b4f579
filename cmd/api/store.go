package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/papelaria/internal/application/inventory"
	"github.com/jhoicas/papelaria/internal/domain/repository"
	"github.com/jhoicas/papelaria/internal/infrastructure/memory"
	"github.com/jhoicas/papelaria/internal/infrastructure/postgres"
	"github.com/jhoicas/papelaria/pkg/config"
	"github.com/jhoicas/papelaria/pkg/logger"
)

// registry repositorios y runner transaccional del almacenamiento elegido.
type registry struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	sales     repository.SaleRepository
	tx        inventory.TxRunner
	close     func()
}

func openRegistry(ctx context.Context, cfg config.StoreConfig, db config.DBConfig, log *logger.Logger) (*registry, error) {
	switch cfg.Driver {
	case config.StoreDriverMemory:
		store := memory.NewStore(cfg.LockTimeout)
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &registry{
			customers: store.Customers(),
			products:  store.Products(),
			sales:     store.Sales(),
			tx:        store,
			close:     func() {},
		}, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("crear esquema: %w", err)
		}
		return &registry{
			customers: postgres.NewCustomerRepository(pool),
			products:  postgres.NewProductRepository(pool),
			sales:     postgres.NewSaleRepository(pool),
			tx: postgres.NewTxRunner(pool, postgres.TxOptions{
				LockTimeout: cfg.LockTimeout,
				Retries:     cfg.TxRetries,
			}, log),
			close: pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Driver)
	}
}

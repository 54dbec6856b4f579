package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaLockKey clave del advisory lock que serializa EnsureSchema entre procesos.
const schemaLockKey = 7_246_118

// schemaDDL es idempotente: puede ejecutarse sobre una base ya inicializada.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS customers (
	id                 BIGSERIAL PRIMARY KEY,
	national_id        TEXT        NOT NULL,
	name               TEXT        NOT NULL,
	email              TEXT        NOT NULL DEFAULT '',
	phone              TEXT        NOT NULL,
	purchased_quantity BIGINT      NOT NULL DEFAULT 0,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT customers_national_id_key UNIQUE (national_id),
	CONSTRAINT customers_national_id_format CHECK (national_id ~ '^[0-9]{11}$'),
	CONSTRAINT customers_name_not_blank CHECK (btrim(name) <> ''),
	CONSTRAINT customers_purchased_quantity_check CHECK (purchased_quantity >= 0)
);

CREATE TABLE IF NOT EXISTS products (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT        NOT NULL,
	price      NUMERIC     NOT NULL DEFAULT 0,
	stock      BIGINT      NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT products_name_not_blank CHECK (btrim(name) <> ''),
	CONSTRAINT products_price_check CHECK (price >= 0),
	CONSTRAINT products_stock_check CHECK (stock >= 0)
);

CREATE TABLE IF NOT EXISTS sales (
	id                   BIGSERIAL PRIMARY KEY,
	transaction_id       TEXT        NOT NULL,
	customer_national_id TEXT        NOT NULL REFERENCES customers (national_id),
	product_id           BIGINT      NOT NULL REFERENCES products (id),
	quantity             BIGINT      NOT NULL,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT sales_transaction_id_key UNIQUE (transaction_id),
	CONSTRAINT sales_quantity_check CHECK (quantity > 0)
);

CREATE INDEX IF NOT EXISTS sales_customer_national_id_idx ON sales (customer_national_id, id);
CREATE INDEX IF NOT EXISTS sales_product_id_idx ON sales (product_id);
`

// EnsureSchema crea las tablas customers, products y sales si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, schemaLockKey); err != nil {
		return fmt.Errorf("schema lock: %w", err)
	}
	if _, err := tx.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

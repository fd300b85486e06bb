package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC NOT NULL DEFAULT 0 CHECK (price >= 0),
		stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image       TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id             TEXT PRIMARY KEY,
		user_name      TEXT NOT NULL,
		user_email     TEXT NOT NULL,
		user_phone     TEXT NOT NULL,
		address        TEXT NOT NULL,
		pincode        TEXT NOT NULL,
		design         TEXT NOT NULL,
		item_id        TEXT NOT NULL DEFAULT '',
		quantity       INTEGER NOT NULL CHECK (quantity >= 1),
		price_per_unit NUMERIC NOT NULL DEFAULT 0 CHECK (price_per_unit >= 0),
		total_amount   NUMERIC NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'Pending',
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_email ON orders (user_email, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)`,
}

func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

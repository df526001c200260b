// Package db creates the tables the repositories expect. Statements are
// idempotent so the server can run them on every start.
package db

import (
	"context"
	"database/sql"
)

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			brand TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			sub_category TEXT NOT NULL DEFAULT '',
			price BIGINT NOT NULL,
			offer_price BIGINT,
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			gallery JSONB NOT NULL DEFAULT '[]',
			is_stock BOOLEAN NOT NULL DEFAULT TRUE,
			is_visible BOOLEAN NOT NULL DEFAULT TRUE,
			is_best_seller BOOLEAN NOT NULL DEFAULT FALSE,
			is_decant_available BOOLEAN NOT NULL DEFAULT FALSE,
			decant_price_3ml BIGINT,
			decant_price_5ml BIGINT,
			decant_price_10ml BIGINT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`,
		`CREATE TABLE IF NOT EXISTS categories (
			name TEXT PRIMARY KEY,
			is_system BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			customer_address TEXT NOT NULL DEFAULT '',
			total BIGINT NOT NULL,
			method TEXT NOT NULL,
			status TEXT NOT NULL,
			items JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist_entries (
			device_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			product JSONB NOT NULL,
			added_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (device_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS hero_images (
			section TEXT PRIMARY KEY,
			images JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

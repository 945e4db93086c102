package postgres

import (
	"context"
	"fmt"

	"github.com/globallang/gla-backend/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Compile-time checks that Store covers every collection accessor.
var (
	_ storage.UserStore    = (*Store)(nil)
	_ storage.ClassStore   = (*Store)(nil)
	_ storage.CartStore    = (*Store)(nil)
	_ storage.PaymentStore = (*Store)(nil)
)

// Store provides Postgres-backed persistence for all four collections.
type Store struct {
	pool *pgxpool.Pool
}

// New connects a pool and applies the schema.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL,
			photo_url TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique_idx ON users (email);`,
		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			instructor_name TEXT NOT NULL DEFAULT '',
			instructor_email TEXT NOT NULL,
			price_cents BIGINT NOT NULL DEFAULT 0,
			available_seats INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			feedback TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS classes_instructor_email_idx ON classes (instructor_email);`,
		`CREATE TABLE IF NOT EXISTS carts (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL,
			class_id UUID NOT NULL,
			class_name TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			price_cents BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS carts_email_idx ON carts (email);`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL,
			transaction_id TEXT NOT NULL DEFAULT '',
			amount_cents BIGINT NOT NULL,
			cart_item_ids UUID[] NOT NULL DEFAULT '{}',
			class_ids UUID[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

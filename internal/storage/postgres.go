package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresPool is the subset of pgxpool.Pool the backend uses.
type PostgresPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresBackend keeps each slot as one row in a kv_slots table. The table
// is created on construction so the backend works against an empty database.
type PostgresBackend struct {
	pool PostgresPool
}

func NewPostgresBackend(ctx context.Context, pool PostgresPool) (*PostgresBackend, error) {
	query := `
		CREATE TABLE IF NOT EXISTS kv_slots (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("ensure kv_slots table: %w", err)
	}
	return &PostgresBackend{pool: pool}, nil
}

func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM kv_slots WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query slot %q: %w", key, err)
	}
	return value, nil
}

func (p *PostgresBackend) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := p.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert slot %q: %w", key, err)
	}
	return nil
}

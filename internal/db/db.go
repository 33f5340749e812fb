// Package db provides PostgreSQL storage for profiles, drafts and render history.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// schema is applied by EnsureSchema. Every statement is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	name       TEXT PRIMARY KEY,
	about_me   TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS drafts (
	id               UUID PRIMARY KEY,
	layout           TEXT NOT NULL,
	text             TEXT NOT NULL,
	job_description  TEXT NOT NULL DEFAULT '',
	model            TEXT NOT NULL DEFAULT '',
	generation_error TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS drafts_updated_at_idx ON drafts (updated_at DESC);

CREATE TABLE IF NOT EXISTS renders (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	draft_id   UUID REFERENCES drafts (id) ON DELETE CASCADE,
	layout     TEXT NOT NULL,
	filename   TEXT NOT NULL,
	pages      INTEGER NOT NULL,
	size_bytes INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema creates the tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

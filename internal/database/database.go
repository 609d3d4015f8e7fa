package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Postgres driver registration.
	_ "github.com/lib/pq"
)

// DB wraps the shared sql.DB handle used by all repositories.
type DB struct {
	*sql.DB
}

// New opens a Postgres connection pool and verifies connectivity.
func New(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

// Migrate applies the schema. Statements are idempotent so this is safe to
// run on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS todos (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			description VARCHAR(500),
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			important BOOLEAN NOT NULL DEFAULT FALSE,
			category VARCHAR(50),
			due_date DATE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_completed ON todos (completed)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_category ON todos (category)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_important ON todos (important)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_due_date ON todos (due_date)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			description VARCHAR(200),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		// The unique index is the backstop for the check-then-insert race in
		// category creation: two concurrent creates can both pass the
		// existence check, but only one insert survives.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories (name)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/aqari/internal/preference"
)

// Postgres keeps preferences in the preferences table.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the preferences table when it does not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS preferences (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create preferences table: %w", err)
	}

	return nil
}

func (s *Postgres) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM preferences WHERE key = $1`

	var value string

	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", preference.ErrNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get preference %q: %w", key, err)
	}

	return value, nil
}

func (s *Postgres) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}

	return nil
}

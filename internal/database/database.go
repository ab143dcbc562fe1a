// Package database opens the Postgres pool backing the preference store.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Pool sizes the connection pool. Preferences see one row per key, so a
// handful of connections is plenty.
type Pool struct {
	MaxOpen     int
	MaxLifetime time.Duration
	PingTimeout time.Duration
}

func (p Pool) withDefaults() Pool {
	if p.MaxOpen <= 0 {
		p.MaxOpen = 10
	}

	if p.MaxLifetime <= 0 {
		p.MaxLifetime = 5 * time.Minute
	}

	if p.PingTimeout <= 0 {
		p.PingTimeout = 5 * time.Second
	}

	return p
}

// Open connects through the pgx stdlib driver and gives up when the server
// does not answer within PingTimeout.
func Open(ctx context.Context, dsn string, pool Pool) (*sql.DB, error) {
	pool = pool.withDefaults()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpen)
	db.SetMaxIdleConns(max(1, pool.MaxOpen/5))
	db.SetConnMaxLifetime(pool.MaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pool.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

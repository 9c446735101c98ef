// Package postgres stores users, profiles and session records in PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtroode/authgate-server/database"
)

const pingTimeout = 5 * time.Second

// Connection is the shared pool used by every repository in this package.
type Connection struct {
	*pgxpool.Pool
}

// Open applies pending migrations, then opens a pool and checks that the
// server answers.
func Open(ctx context.Context, dsn string) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	if err := database.Migrate(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	conn := &Connection{Pool: pool}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := conn.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	if err := c.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}
	return nil
}

// Close releases the pool. It is safe to call on a zero Connection.
func (c *Connection) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

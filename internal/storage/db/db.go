package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanvumaihuynh/food-catalog/internal/config"
)

const closeTimeout = 5 * time.Second

// DB is the query surface shared by a dialed connection and a pooled one.
type DB interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// Connector hands out a connection for the duration of fn.
type Connector interface {
	// WithConn acquires a connection, runs fn with it and releases the
	// connection on every return path, including panics.
	WithConn(ctx context.Context, fn func(DB) error) error
}

type HealthChecker interface {
	IsHealthy(ctx context.Context) (bool, error)
}

var (
	_ Connector     = (*Client)(nil)
	_ HealthChecker = (*Client)(nil)
)

// Client acquires connections either by dialing a fresh one per call or,
// when a pool is configured, by borrowing from it.
type Client struct {
	connConfig *pgx.ConnConfig
	pool       *pgxpool.Pool
}

// NewClient creates a db client for cfg. With cfg.Pooled a pgx pool is
// created and pinged, otherwise the connection settings are only parsed and
// nothing is dialed until the first WithConn.
func NewClient(ctx context.Context, cfg config.Postgres) (*Client, error) {
	if cfg.Pooled {
		pool, err := NewPgxPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("new pgx pool: %w", err)
		}
		return &Client{pool: pool}, nil
	}

	connConfig, err := newConnConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("new conn config: %w", err)
	}

	return &Client{connConfig: connConfig}, nil
}

// Pool returns the underlying pool, or nil in per-call mode.
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

func (c *Client) WithConn(ctx context.Context, fn func(DB) error) (err error) {
	if c.pool != nil {
		conn, err := c.pool.Acquire(ctx)
		if err != nil {
			return fmt.Errorf("acquire connection: %w", err)
		}
		defer conn.Release()

		return fn(conn)
	}

	conn, err := pgx.ConnectConfig(ctx, c.connConfig.Copy())
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()

		if closeErr := conn.Close(closeCtx); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close connection: %w", closeErr))
		}
	}()

	return fn(conn)
}

func (c *Client) IsHealthy(ctx context.Context) (bool, error) {
	err := c.WithConn(ctx, func(db DB) error {
		var one int
		return db.QueryRow(ctx, "SELECT 1").Scan(&one)
	})
	if err != nil {
		return false, fmt.Errorf("ping database: %w", err)
	}
	return true, nil
}

// Close releases the pool, if any.
func (c *Client) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

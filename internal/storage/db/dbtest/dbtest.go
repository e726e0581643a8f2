// Package dbtest starts a throwaway Postgres for integration tests and
// applies a test copy of the product table schema.
package dbtest

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/tuanvumaihuynh/food-catalog/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	image    = "postgres:16-alpine"
	database = "fooddb"
	username = "food"
	password = "food"
)

// NewPostgres starts a Postgres container, migrates it and returns the
// matching configuration. The test is skipped in -short mode or when no
// container runtime is reachable.
func NewPostgres(t *testing.T) config.Postgres {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	ctr, err := postgres.Run(ctx, image,
		postgres.WithDatabase(database),
		postgres.WithUsername(username),
		postgres.WithPassword(password),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	host, err := ctr.Host(ctx)
	require.NoError(t, err)

	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := config.Postgres{
		Host:            host,
		Port:            port.Int(),
		User:            username,
		Password:        password,
		DB:              database,
		SSLMode:         "disable",
		FoodTable:       "foodtbl",
		ConnectTimeout:  5 * time.Second,
		MaxConns:        4,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	}

	require.NoError(t, migrate(ctx, cfg))

	return cfg
}

func migrate(ctx context.Context, cfg config.Postgres) error {
	connConfig, err := pgx.ParseConfig(fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DB))
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	sqlDB := stdlib.OpenDB(*connConfig)
	defer sqlDB.Close()

	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("sub migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("new goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// Exec runs a statement against cfg on a dedicated connection, used to seed rows.
func Exec(t *testing.T, cfg config.Postgres, sql string, args ...any) {
	t.Helper()

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DB))
	require.NoError(t, err)
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, sql, args...)
	require.NoError(t, err)
}

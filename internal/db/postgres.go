package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOptions tunes the connection pool
type PostgresOptions struct {
	MaxConns int32
	MinConns int32
	// Bootstrap creates the entries table and its indexes when missing
	Bootstrap bool
	Table     string
}

// InitPostgres initializes and returns a PostgreSQL connection pool.
// A non-empty password overrides the one embedded in databaseURL.
func InitPostgres(ctx context.Context, databaseURL, password string, opts PostgresOptions) (*pgxpool.Pool, error) {
	config, err := poolConfig(databaseURL, password, opts)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if opts.Bootstrap {
		if err := createTables(ctx, pool, opts.Table); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}

	return pool, nil
}

// poolConfig parses databaseURL and applies the password override and pool
// sizing
func poolConfig(databaseURL, password string, opts PostgresOptions) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	if password != "" {
		config.ConnConfig.Password = password
	}

	// Set connection pool settings
	config.MaxConns = 10
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	config.MinConns = 1
	if opts.MinConns > 0 && opts.MinConns <= config.MaxConns {
		config.MinConns = opts.MinConns
	}
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30
	config.HealthCheckPeriod = time.Minute * 5

	return config, nil
}

// createTables creates the entries table if it doesn't exist
func createTables(ctx context.Context, pool *pgxpool.Pool, table string) error {
	if table == "" {
		table = "data_entries"
	}
	statements := entriesSchema(table)
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}

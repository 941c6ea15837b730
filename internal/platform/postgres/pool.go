// Copyright (c) 2026 Inner Garden. All rights reserved.

// Package postgres opens the connection pool behind the artwork repository.
//
// The catalogue is served from memory. Postgres is read in bulk once at boot
// and written to by the admin panel afterwards, so the pool stays small.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/innergarden/gallery/internal/platform/constants"
)

const (
	maxConnLifetime   = time.Hour
	maxConnIdleTime   = 10 * time.Minute
	healthCheckPeriod = time.Minute
	connectTimeout    = 5 * time.Second
	pingTimeout       = 2 * time.Second
)

// Options sizes the pool. Zero fields fall back to [DefaultOptions].
type Options struct {
	MaxConns int32
	MinConns int32
	// StatementTimeout caps every statement on every connection.
	StatementTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxConns:         10,
		MinConns:         1,
		StatementTimeout: constants.GlobalRequestTimeout,
	}
}

func (options Options) withDefaults() Options {
	defaults := DefaultOptions()
	if options.MaxConns <= 0 {
		options.MaxConns = defaults.MaxConns
	}
	if options.MinConns <= 0 || options.MinConns > options.MaxConns {
		options.MinConns = min(defaults.MinConns, options.MaxConns)
	}
	if options.StatementTimeout <= 0 {
		options.StatementTimeout = defaults.StatementTimeout
	}
	return options
}

// PoolConfig parses dsn and applies the sizing options without connecting.
func PoolConfig(dsn string, tuning Options) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	tuning = tuning.withDefaults()
	poolConfig.MaxConns = tuning.MaxConns
	poolConfig.MinConns = tuning.MinConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	statementTimeout := fmt.Sprintf("SET statement_timeout = %d", tuning.StatementTimeout.Milliseconds())
	poolConfig.AfterConnect = func(ctx context.Context, connection *pgx.Conn) error {
		_, err := connection.Exec(ctx, statementTimeout)
		return err
	}
	return poolConfig, nil
}

/*
NewPool connects to dsn and verifies the pool with a ping.

Returns:
  - *pgxpool.Pool: a live pool, closed by the caller at shutdown
  - error: DSN, connection or ping failure
*/
func NewPool(ctx context.Context, dsn string, tuning Options, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(dsn, tuning)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres_pool_connected",
		slog.String("database", poolConfig.ConnConfig.Database),
		slog.Int("max_conns", int(poolConfig.MaxConns)),
		slog.Int("min_conns", int(poolConfig.MinConns)),
	)
	return pool, nil
}

// Ping verifies that the pool can reach the database.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}
	return nil
}

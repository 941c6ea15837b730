// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package redis connects the favourites store to Redis.

Each visitor owns one small JSON document whose TTL slides forward on every
write, so the client only needs a modest pool and short timeouts.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// Options tunes the client pool. Zero fields fall back to [DefaultOptions].
type Options struct {
	PoolSize     int
	MinIdleConns int
	OpTimeout    time.Duration
}

// DefaultOptions suits one API instance serving favourites toggles.
func DefaultOptions() Options {
	return Options{
		PoolSize:     10,
		MinIdleConns: 2,
		OpTimeout:    2 * time.Second,
	}
}

func (options Options) withDefaults() Options {
	defaults := DefaultOptions()
	if options.PoolSize <= 0 {
		options.PoolSize = defaults.PoolSize
	}
	if options.MinIdleConns <= 0 || options.MinIdleConns > options.PoolSize {
		options.MinIdleConns = min(defaults.MinIdleConns, options.PoolSize)
	}
	if options.OpTimeout <= 0 {
		options.OpTimeout = defaults.OpTimeout
	}
	return options
}

/*
NewClient parses redisURL, applies the pool options and pings the server.

Parameters:
  - context: bounds the initial ping
  - redisURL: redis:// or rediss:// URL
  - tuning: pool options, zero values take defaults
  - logger: receives the connection event

Returns:
  - *redis.Client: a connected client
  - error: URL parse or connectivity failure
*/
func NewClient(context stdctx.Context, redisURL string, tuning Options, logger *slog.Logger) (*redis.Client, error) {
	options, err := ClientOptions(redisURL, tuning)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
		slog.Int("pool_size", options.PoolSize),
	)
	return client, nil
}

// ClientOptions builds go-redis options without dialing.
func ClientOptions(redisURL string, tuning Options) (*redis.Options, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	tuning = tuning.withDefaults()
	options.PoolSize = tuning.PoolSize
	options.MinIdleConns = tuning.MinIdleConns
	options.MaxIdleConns = tuning.PoolSize
	options.DialTimeout = tuning.OpTimeout + time.Second
	options.ReadTimeout = tuning.OpTimeout
	options.WriteTimeout = tuning.OpTimeout
	return options, nil
}

// Ping reports whether the server answers within two seconds.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}

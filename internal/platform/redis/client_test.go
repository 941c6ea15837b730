// Copyright (c) 2026 Inner Garden. All rights reserved.

package redis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/innergarden/gallery/internal/platform/redis"
)

func TestClientOptions(t *testing.T) {
	t.Run("defaults fill zero values", func(t *testing.T) {
		options, err := redisstore.ClientOptions("redis://localhost:6379/2", redisstore.Options{})
		require.NoError(t, err)

		assert.Equal(t, "localhost:6379", options.Addr)
		assert.Equal(t, 2, options.DB)
		assert.Equal(t, 10, options.PoolSize)
		assert.Equal(t, 2, options.MinIdleConns)
		assert.Equal(t, 2*time.Second, options.ReadTimeout)
	})

	t.Run("idle connections never exceed the pool", func(t *testing.T) {
		options, err := redisstore.ClientOptions("redis://localhost:6379", redisstore.Options{PoolSize: 1, MinIdleConns: 5})
		require.NoError(t, err)

		assert.Equal(t, 1, options.PoolSize)
		assert.Equal(t, 1, options.MinIdleConns)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := redisstore.ClientOptions("http://localhost", redisstore.Options{})
		assert.ErrorContains(t, err, "redis: invalid URL")
	})
}

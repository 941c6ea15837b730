// Copyright (c) 2026 Inner Garden. All rights reserved.

package favorite

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage implements [Storage] on Redis string keys.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage creates a Redis-backed [Storage]. Every write refreshes ttl;
// a zero ttl keeps keys forever.
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

/*
Load reads the raw favourites payload.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - []byte: stored payload, nil when the key is absent
  - error: connectivity errors
*/
func (storage *RedisStorage) Load(context context.Context, key string) ([]byte, error) {
	data, err := storage.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_favorites_get_failed: %w", err)
	}
	return data, nil
}

// Save overwrites the payload and refreshes its expiry.
func (storage *RedisStorage) Save(context context.Context, key string, data []byte) error {
	if err := storage.client.Set(context, key, data, storage.ttl).Err(); err != nil {
		return fmt.Errorf("redis_favorites_set_failed: %w", err)
	}
	return nil
}

// # In-Process Storage

// MemoryStorage implements [Storage] in process memory, for tests and local runs.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage creates an empty [MemoryStorage].
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: map[string][]byte{}}
}

func (storage *MemoryStorage) Load(context context.Context, key string) ([]byte, error) {
	storage.mu.RLock()
	defer storage.mu.RUnlock()

	data, ok := storage.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (storage *MemoryStorage) Save(context context.Context, key string, data []byte) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()

	storage.data[key] = append([]byte(nil), data...)
	return nil
}

// Copyright (c) 2026 Inner Garden. All rights reserved.

package favorite_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/innergarden/gallery/internal/core/favorite"
)

type brokenStorage struct {
	loadErr error
	saveErr error
	saves   int
}

func (storage *brokenStorage) Load(context context.Context, key string) ([]byte, error) {
	return nil, storage.loadErr
}

func (storage *brokenStorage) Save(context context.Context, key string, data []byte) error {
	storage.saves++
	return storage.saveErr
}

type presence map[string]bool

func (p presence) Has(id string) bool { return p[id] }

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buffer, nil)), buffer
}

func TestKey(t *testing.T) {
	assert.Equal(t, "innergarden:favorites:visitor-1", favorite.Key("visitor-1"))
}

/*
TestStore_RoundTrip checks persistence across Open calls.
*/
func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := favorite.NewMemoryStorage()
	logger, _ := bufferLogger()

	store := favorite.Open(ctx, storage, "k", logger)
	assert.True(t, store.Toggle(ctx, "b"))
	assert.True(t, store.Toggle(ctx, "a"))
	assert.True(t, store.IsFavorite("a"))

	data, err := storage.Load(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))

	reopened := favorite.Open(ctx, storage, "k", logger)
	assert.Equal(t, []string{"a", "b"}, reopened.IDs())

	assert.False(t, reopened.Toggle(ctx, "a"))
	assert.False(t, reopened.IsFavorite("a"))
	assert.Equal(t, 1, favorite.Open(ctx, storage, "k", logger).Len())
}

func TestStore_CorruptPayload(t *testing.T) {
	ctx := context.Background()
	storage := favorite.NewMemoryStorage()
	require.NoError(t, storage.Save(ctx, "k", []byte(`{not json`)))

	logger, buffer := bufferLogger()
	store := favorite.Open(ctx, storage, "k", logger)

	assert.Zero(t, store.Len())
	assert.Contains(t, buffer.String(), "favorites_corrupt")

	// The corrupt value is replaced by the next write.
	store.Toggle(ctx, "a")
	assert.Equal(t, []string{"a"}, favorite.Open(ctx, storage, "k", logger).IDs())
}

func TestStore_StorageFailures(t *testing.T) {
	ctx := context.Background()
	storage := &brokenStorage{loadErr: errors.New("timeout"), saveErr: errors.New("read only")}
	logger, buffer := bufferLogger()

	store := favorite.Open(ctx, storage, "k", logger)
	assert.Zero(t, store.Len())

	assert.True(t, store.Toggle(ctx, "a"))
	assert.True(t, store.IsFavorite("a"))
	assert.Equal(t, 1, storage.saves)

	assert.Contains(t, buffer.String(), "favorites_load_failed")
	assert.Contains(t, buffer.String(), "favorites_save_failed")
}

func TestStore_Present(t *testing.T) {
	ctx := context.Background()
	logger, _ := bufferLogger()
	store := favorite.Open(ctx, favorite.NewMemoryStorage(), "k", logger)
	store.Toggle(ctx, "kept")
	store.Toggle(ctx, "gone")

	assert.Equal(t, []string{"kept"}, store.Present(presence{"kept": true}))
	assert.Equal(t, []string{"gone", "kept"}, store.IDs())
}

/*
TestStore_ToggleTwice checks that two toggles restore the original state.
*/
func TestStore_ToggleTwice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		logger, _ := bufferLogger()
		storage := favorite.NewMemoryStorage()

		store := favorite.Open(ctx, storage, "k", logger)
		for _, id := range rapid.SliceOf(rapid.SampledFrom([]string{"a", "b", "c"})).Draw(t, "seed") {
			store.Toggle(ctx, id)
		}
		before := store.IDs()

		id := rapid.SampledFrom([]string{"a", "b", "c", "d"}).Draw(t, "id")
		was := store.IsFavorite(id)

		assert.Equal(t, !was, store.Toggle(ctx, id))
		assert.Equal(t, !was, store.IsFavorite(id))
		assert.Equal(t, was, store.Toggle(ctx, id))

		assert.Equal(t, before, store.IDs())
		assert.Equal(t, before, favorite.Open(ctx, storage, "k", logger).IDs())
	})
}

// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package favorite keeps the per-visitor set of favourited artworks.

Favourites are a convenience overlay keyed by artwork id. They survive
across sessions through a [Storage] collaborator and are never critical:
missing or corrupt data reads as an empty set, and a failed write is logged
and otherwise ignored.

Orphans (ids whose artwork left the catalogue) are dropped at read time by
[Store.Present], never at write time.
*/
package favorite

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/innergarden/gallery/internal/platform/constants"
	"github.com/innergarden/gallery/pkg/slice"
)

// Storage is the durable key-value collaborator behind the favourites set.
//
// Load returns (nil, nil) when the key does not exist.
type Storage interface {
	Load(context context.Context, key string) ([]byte, error)
	Save(context context.Context, key string, data []byte) error
}

// Presence reports whether an artwork is still in the catalogue.
type Presence interface {
	Has(id string) bool
}

// Key returns the namespaced storage key of a visitor.
func Key(visitorID string) string {
	return constants.RedisPrefixFavorites + visitorID
}

// # Store

// Store is one visitor's favourites, loaded from [Storage].
//
// A Store is not safe for concurrent use; open one per request.
type Store struct {
	key     string
	ids     map[string]struct{}
	storage Storage
	logger  *slog.Logger
}

/*
Open loads the favourites stored under key.

Description: Storage errors and undecodable payloads both yield an empty set.
They are logged at warn level because favourites must never fail a request.
*/
func Open(context context.Context, storage Storage, key string, logger *slog.Logger) *Store {
	store := &Store{
		key:     key,
		ids:     map[string]struct{}{},
		storage: storage,
		logger:  logger,
	}

	data, err := storage.Load(context, key)
	if err != nil {
		logger.WarnContext(context, "favorites_load_failed", slog.String("key", key), slog.Any("error", err))
		return store
	}
	if len(data) == 0 {
		return store
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		logger.WarnContext(context, "favorites_corrupt", slog.String("key", key), slog.Any("error", err))
		return store
	}

	for _, id := range ids {
		if id != "" {
			store.ids[id] = struct{}{}
		}
	}
	return store
}

// IsFavorite reports membership.
func (store *Store) IsFavorite(id string) bool {
	_, ok := store.ids[id]
	return ok
}

// Toggle flips membership of id, persists the set and returns the new state.
func (store *Store) Toggle(context context.Context, id string) bool {
	favorite := !store.IsFavorite(id)
	if favorite {
		store.ids[id] = struct{}{}
	} else {
		delete(store.ids, id)
	}

	store.save(context)
	return favorite
}

// IDs returns every stored id in ascending order, orphans included.
func (store *Store) IDs() []string {
	ids := make([]string, 0, len(store.ids))
	for id := range store.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Present returns the stored ids that still exist in catalog, in ascending order.
func (store *Store) Present(catalog Presence) []string {
	return slice.Filter(store.IDs(), catalog.Has)
}

// Len returns the number of stored ids.
func (store *Store) Len() int {
	return len(store.ids)
}

func (store *Store) save(context context.Context) {
	data, err := json.Marshal(store.IDs())
	if err != nil {
		store.logger.ErrorContext(context, "favorites_encode_failed", slog.String("key", store.key), slog.Any("error", err))
		return
	}

	if err := store.storage.Save(context, store.key, data); err != nil {
		store.logger.ErrorContext(context, "favorites_save_failed", slog.String("key", store.key), slog.Any("error", err))
	}
}

// Copyright (c) 2026 Inner Garden. All rights reserved.

package collection

import (
	"slices"
	"strings"
	"sync"

	"github.com/innergarden/gallery/internal/core/artwork"
)

// # In-Memory Catalogue

// Catalog is the searchable snapshot of normalised artworks.
//
// Readers take the current snapshot and search it without holding the lock.
// Writers build a new snapshot and swap it, so a snapshot is never modified
// once published. Catalog implements [artwork.Catalog].
type Catalog struct {
	mu       sync.RWMutex
	snapshot []*artwork.Artwork
	byID     map[string]*artwork.Artwork
}

// NewCatalog returns an empty [Catalog].
func NewCatalog() *Catalog {
	return &Catalog{byID: map[string]*artwork.Artwork{}}
}

// Load replaces the whole catalogue. Later duplicates of an id win.
func (catalog *Catalog) Load(artworks []*artwork.Artwork) {
	byID := make(map[string]*artwork.Artwork, len(artworks))
	for _, item := range artworks {
		if item == nil {
			continue
		}
		byID[item.ID] = item
	}

	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	catalog.publish(byID)
}

// Upsert inserts or replaces one artwork.
func (catalog *Catalog) Upsert(item *artwork.Artwork) {
	if item == nil {
		return
	}

	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	byID := make(map[string]*artwork.Artwork, len(catalog.byID)+1)
	for id, existing := range catalog.byID {
		byID[id] = existing
	}
	byID[item.ID] = item
	catalog.publish(byID)
}

// Remove deletes one artwork and reports whether it was present.
func (catalog *Catalog) Remove(id string) bool {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	if _, ok := catalog.byID[id]; !ok {
		return false
	}

	byID := make(map[string]*artwork.Artwork, len(catalog.byID))
	for key, existing := range catalog.byID {
		if key != id {
			byID[key] = existing
		}
	}
	catalog.publish(byID)
	return true
}

// Get returns one artwork by id.
func (catalog *Catalog) Get(id string) (*artwork.Artwork, bool) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	item, ok := catalog.byID[id]
	return item, ok
}

// Has reports whether id is in the catalogue.
func (catalog *Catalog) Has(id string) bool {
	_, ok := catalog.Get(id)
	return ok
}

// Len returns the number of artworks.
func (catalog *Catalog) Len() int {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	return len(catalog.snapshot)
}

// Snapshot returns the current artworks ordered by id.
// The slice must not be modified.
func (catalog *Catalog) Snapshot() []*artwork.Artwork {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	return catalog.snapshot
}

// publish must be called with the write lock held.
func (catalog *Catalog) publish(byID map[string]*artwork.Artwork) {
	snapshot := make([]*artwork.Artwork, 0, len(byID))
	for _, item := range byID {
		snapshot = append(snapshot, item)
	}
	slices.SortFunc(snapshot, func(a, b *artwork.Artwork) int {
		return strings.Compare(a.ID, b.ID)
	})

	catalog.byID = byID
	catalog.snapshot = snapshot
}

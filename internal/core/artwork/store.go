// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

import "context"

// Repository is the durable source of truth for artwork records.
type Repository interface {
	ListAll(context context.Context) ([]Record, error)
	FindByID(context context.Context, id string) (*Record, error)
	Create(context context.Context, record *Record) error
	Update(context context.Context, record *Record) error
	// UpsertAll writes every record or none of them.
	UpsertAll(context context.Context, records []Record) error
	Delete(context context.Context, id string) error
}

// Catalog is the in-memory searchable snapshot fed by the [Service].
//
// Implementations must be safe for concurrent use.
type Catalog interface {
	Load(artworks []*Artwork)
	Upsert(artwork *Artwork)
	Remove(id string) bool
	Get(id string) (*Artwork, bool)
}

// Copyright (c) 2026 Inner Garden. All rights reserved.

package favorite

import (
	"context"
	"log/slog"

	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/platform/apperr"
	"github.com/innergarden/gallery/internal/platform/ctxutil"
)

// Catalog is the read side of the artwork catalogue needed by favourites.
type Catalog interface {
	Presence
	Get(id string) (*artwork.Artwork, bool)
}

// Service exposes visitor favourites to handlers and to the collection search.
type Service struct {
	storage Storage
	catalog Catalog
}

// NewService creates a new [Service].
func NewService(storage Storage, catalog Catalog) *Service {
	return &Service{storage: storage, catalog: catalog}
}

// open loads the visitor's favourites, logging through the request logger.
func (service *Service) open(context context.Context, visitorID string) *Store {
	logger := ctxutil.GetLogger(context).With(slog.String("visitor_id", visitorID))
	return Open(context, service.storage, Key(visitorID), logger)
}

/*
Toggle flips one favourite for a visitor.

Description: Adding an id that is not in the catalogue is rejected. Removing
always succeeds so visitors can clear orphans.

Parameters:
  - context: context.Context
  - visitorID: string
  - artworkID: string

Returns:
  - bool: the new favourite state
  - error: apperr.BadRequest / apperr.NotFound
*/
func (service *Service) Toggle(context context.Context, visitorID, artworkID string) (bool, error) {
	if visitorID == "" {
		return false, apperr.BadRequest("Missing visitor identifier")
	}

	store := service.open(context, visitorID)
	if !store.IsFavorite(artworkID) && !service.catalog.Has(artworkID) {
		return false, apperr.NotFound("Artwork")
	}

	favorite := store.Toggle(context, artworkID)

	ctxutil.GetLogger(context).InfoContext(context, "favorite_toggled",
		slog.String("artwork_id", artworkID),
		slog.Bool("favorite", favorite),
	)
	return favorite, nil
}

// IsFavorite reports whether the visitor has favourited artworkID.
func (service *Service) IsFavorite(context context.Context, visitorID, artworkID string) bool {
	if visitorID == "" {
		return false
	}
	return service.open(context, visitorID).IsFavorite(artworkID)
}

// IDs returns the visitor's favourites still present in the catalogue.
// A storage outage reads as no favourites; [Open] logs it.
func (service *Service) IDs(context context.Context, visitorID string) []string {
	if visitorID == "" {
		return []string{}
	}
	return service.open(context, visitorID).Present(service.catalog)
}

// Artworks resolves the visitor's present favourites to catalogue entries.
func (service *Service) Artworks(context context.Context, visitorID string) []*artwork.Artwork {
	ids := service.IDs(context, visitorID)

	artworks := make([]*artwork.Artwork, 0, len(ids))
	for _, id := range ids {
		if item, ok := service.catalog.Get(id); ok {
			artworks = append(artworks, item)
		}
	}
	return artworks
}

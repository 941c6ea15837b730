// Copyright (c) 2026 Inner Garden. All rights reserved.

package favorite_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/core/collection"
	"github.com/innergarden/gallery/internal/core/favorite"
	"github.com/innergarden/gallery/internal/platform/apperr"
	"github.com/innergarden/gallery/internal/platform/ctxutil"
	"github.com/innergarden/gallery/internal/platform/i18n"
)

func newCatalog(ids ...string) *collection.Catalog {
	catalog := collection.NewCatalog()
	artworks := make([]*artwork.Artwork, len(ids))
	for i, id := range ids {
		artworks[i] = artwork.Normalize(artwork.Record{
			ID:       id,
			Title:    artwork.Localized{UK: "Твір " + id, EN: "Work " + id},
			Category: artwork.CategoryAbstract,
			Palette:  artwork.PaletteWarm,
		})
	}
	catalog.Load(artworks)
	return catalog
}

func TestService_Toggle(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog("a", "b")
	service := favorite.NewService(favorite.NewMemoryStorage(), catalog)

	on, err := service.Toggle(ctx, "v1", "a")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, service.IsFavorite(ctx, "v1", "a"))
	assert.False(t, service.IsFavorite(ctx, "v2", "a"))
	assert.False(t, service.IsFavorite(ctx, "", "a"))

	_, err = service.Toggle(ctx, "v1", "missing")
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))

	_, err = service.Toggle(ctx, "", "a")
	assert.True(t, apperr.HasCode(err, "BAD_REQUEST"))

	// Orphans are hidden on read but can still be removed.
	catalog.Remove("a")
	assert.Empty(t, service.IDs(ctx, "v1"))

	off, err := service.Toggle(ctx, "v1", "a")
	require.NoError(t, err)
	assert.False(t, off)
}

func TestService_Artworks(t *testing.T) {
	ctx := context.Background()
	service := favorite.NewService(favorite.NewMemoryStorage(), newCatalog("a", "b", "c"))

	for _, id := range []string{"c", "a"} {
		_, err := service.Toggle(ctx, "v1", id)
		require.NoError(t, err)
	}

	artworks := service.Artworks(ctx, "v1")
	require.Len(t, artworks, 2)
	assert.Equal(t, "a", artworks[0].ID)
	assert.Equal(t, "c", artworks[1].ID)
}

/*
TestService_StorageOutage verifies that an unreachable store reads as no
favourites and that the collection search still answers.
*/
func TestService_StorageOutage(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog("a", "b")
	service := favorite.NewService(&brokenStorage{loadErr: errors.New("timeout")}, catalog)

	assert.Empty(t, service.IDs(ctx, "v1"))
	assert.Empty(t, service.Artworks(ctx, "v1"))

	handler := collection.NewHandler(
		collection.NewEngine(catalog, collection.DefaultWeights()),
		service,
		i18n.NewCatalogue(i18n.DefaultMessages),
	)
	router := chi.NewRouter()
	router.Route("/collection", handler.RegisterRoutes)

	recorder := serve(router, http.MethodGet, "/collection", "v1")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []artwork.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	for _, view := range body.Data {
		assert.False(t, view.Favorite)
	}
}

func newFavoritesRouter() http.Handler {
	service := favorite.NewService(favorite.NewMemoryStorage(), newCatalog("a", "b"))
	router := chi.NewRouter()
	router.Route("/favorites", favorite.NewHandler(service).RegisterRoutes)
	return router
}

func serve(router http.Handler, method, target, visitorID string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, nil)
	ctx := ctxutil.WithLanguage(request.Context(), i18n.English)
	if visitorID != "" {
		ctx = ctxutil.WithVisitorID(ctx, visitorID)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request.WithContext(ctx))
	return recorder
}

func TestHandler_ToggleAndList(t *testing.T) {
	router := newFavoritesRouter()

	recorder := serve(router, http.MethodPost, "/favorites/b/toggle", "v1")
	require.Equal(t, http.StatusOK, recorder.Code)

	var toggled struct {
		Data favorite.ToggleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &toggled))
	assert.Equal(t, favorite.ToggleResponse{ID: "b", Favorite: true}, toggled.Data)

	recorder = serve(router, http.MethodGet, "/favorites", "v1")
	require.Equal(t, http.StatusOK, recorder.Code)

	var listed struct {
		Data []artwork.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, "Work b", listed.Data[0].Title)
	assert.True(t, listed.Data[0].Favorite)
}

func TestHandler_Errors(t *testing.T) {
	router := newFavoritesRouter()

	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/favorites", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPost, "/favorites/zzz/toggle", "v1").Code)
}

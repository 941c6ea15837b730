// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innergarden/gallery/internal/platform/ctxutil"
	"github.com/innergarden/gallery/internal/platform/middleware"
	requestutil "github.com/innergarden/gallery/internal/platform/request"
	"github.com/innergarden/gallery/internal/platform/respond"
	"github.com/innergarden/gallery/internal/platform/sec"
)

// FavoriteLookup answers whether a visitor has favourited an artwork.
type FavoriteLookup interface {
	IsFavorite(context context.Context, visitorID, artworkID string) bool
}

type Handler struct {
	service   *Service
	favorites FavoriteLookup
}

func NewHandler(service *Service, favorites FavoriteLookup) *Handler {
	return &Handler{service: service, favorites: favorites}
}

// RegisterRoutes mounts the public artwork detail endpoint.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}", handler.getArtwork)
}

// RegisterAdminRoutes mounts catalogue management. Callers must run
// [middleware.Authenticate] first.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleCurator))

		adminRoute.Get("/{id}", handler.getRecord)
		adminRoute.Post("/", handler.createArtwork)
		adminRoute.Put("/{id}", handler.updateArtwork)

		// Admin strict only
		adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteArtwork)
		adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Post("/import", handler.importArtworks)
	})
}

func (handler *Handler) getArtwork(writer http.ResponseWriter, request *http.Request) {
	artworkID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.service.Get(artworkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view := NewView(artwork, requestutil.Language(request))
	if visitorID := ctxutil.GetVisitorID(request.Context()); visitorID != "" && handler.favorites != nil {
		view.Favorite = handler.favorites.IsFavorite(request.Context(), visitorID, artwork.ID)
	}

	respond.OK(writer, view)
}

func (handler *Handler) getRecord(writer http.ResponseWriter, request *http.Request) {
	artworkID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.service.Get(artworkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artwork)
}

func (handler *Handler) createArtwork(writer http.ResponseWriter, request *http.Request) {
	var input Record
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateArtwork(writer http.ResponseWriter, request *http.Request) {
	artworkID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Record
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), artworkID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteArtwork(writer http.ResponseWriter, request *http.Request) {
	artworkID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), artworkID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) importArtworks(writer http.ResponseWriter, request *http.Request) {
	var input []Record
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	imported, err := handler.service.Import(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"imported": imported})
}

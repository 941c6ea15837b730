// Copyright (c) 2026 Inner Garden. All rights reserved.

package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innergarden/gallery/internal/core/artwork"
	requestutil "github.com/innergarden/gallery/internal/platform/request"
	"github.com/innergarden/gallery/internal/platform/respond"
)

// ToggleResponse is the body of a toggle call.
type ToggleResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the favourites endpoints. The visitor middleware
// must run first.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listFavorites)
	router.Post("/{id}/toggle", handler.toggleFavorite)
}

func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	visitorID, err := requestutil.VisitorID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artworks := handler.service.Artworks(request.Context(), visitorID)

	lang := requestutil.Language(request)
	views := make([]artwork.View, 0, len(artworks))
	for _, item := range artworks {
		view := artwork.NewView(item, lang)
		view.Favorite = true
		views = append(views, view)
	}

	respond.OK(writer, views)
}

func (handler *Handler) toggleFavorite(writer http.ResponseWriter, request *http.Request) {
	visitorID, err := requestutil.VisitorID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artworkID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorite, err := handler.service.Toggle(request.Context(), visitorID, artworkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ToggleResponse{ID: artworkID, Favorite: favorite})
}

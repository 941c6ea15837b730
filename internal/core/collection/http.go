// Copyright (c) 2026 Inner Garden. All rights reserved.

package collection

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/platform/ctxutil"
	"github.com/innergarden/gallery/internal/platform/i18n"
	requestutil "github.com/innergarden/gallery/internal/platform/request"
	"github.com/innergarden/gallery/internal/platform/respond"
	"github.com/innergarden/gallery/pkg/convert"
	"github.com/innergarden/gallery/pkg/pagination"
	"github.com/innergarden/gallery/pkg/query"
)

// FavoriteSource lists the artworks a visitor has favourited.
// Unreadable favourites come back as an empty list.
type FavoriteSource interface {
	IDs(context context.Context, visitorID string) []string
}

// Meta is the list metadata of a collection page.
type Meta struct {
	pagination.Meta
	SortBy   SortMode `json:"sort_by"`
	Tokens   []string `json:"tokens"`
	Language string   `json:"language"`
}

type Handler struct {
	engine    *Engine
	favorites FavoriteSource
	messages  *i18n.Catalogue
}

func NewHandler(engine *Engine, favorites FavoriteSource, messages *i18n.Catalogue) *Handler {
	return &Handler{engine: engine, favorites: favorites, messages: messages}
}

// RegisterRoutes mounts the collection browser endpoints.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.search)
	router.Get("/facets", handler.facets)
}

/*
ParseFilterState maps collection query parameters onto a [FilterState].

Facets accept comma lists or repeated keys. Blank and unknown values are kept
as-is: unknown facet values simply never match.
*/
func ParseFilterState(values url.Values, lang i18n.Language) FilterState {
	price := query.First(values, "price")
	if price == "" {
		price = PriceAny
	}

	return FilterState{
		Categories:    NewSet(query.Values(values, "category")...),
		Moods:         NewSet(query.Values(values, "mood")...),
		Palettes:      NewSet(query.Values(values, "palette")...),
		Spaces:        NewSet(query.Values(values, "space")...),
		Availability:  NewSet(query.Values(values, "availability")...),
		PriceRange:    price,
		SearchQuery:   query.First(values, "q"),
		SortBy:        ParseSortMode(query.First(values, "sort")),
		Language:      lang,
		FavoritesOnly: convert.ToBool(query.First(values, "favorites")),
	}
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	lang := requestutil.Language(request)
	state := ParseFilterState(request.URL.Query(), lang)

	favorites := handler.visitorFavorites(ctx)
	state.Favorites = favorites

	result := handler.engine.Search(state)

	params := pagination.FromRequest(request)
	start, end := params.Window(result.Total)

	views := make([]artwork.View, 0, end-start)
	for _, hit := range result.Hits[start:end] {
		view := artwork.NewView(hit.Artwork, result.Language)
		view.Favorite = favorites.Has(hit.Artwork.ID)
		if len(result.Tokens) > 0 {
			score := hit.Score
			view.Score = &score
		}
		views = append(views, view)
	}

	tokens := result.Tokens
	if tokens == nil {
		tokens = []string{}
	}

	ctxutil.GetLogger(ctx).Debug("collection_searched",
		"query", state.SearchQuery,
		"filtered", !state.IsEmpty(),
		"sort_by", result.SortBy,
		"total", result.Total,
	)

	respond.WithMeta(writer, views, Meta{
		Meta:     pagination.NewMeta(params.Page, params.Limit, result.Total),
		SortBy:   result.SortBy,
		Tokens:   tokens,
		Language: result.Language.String(),
	})
}

func (handler *Handler) facets(writer http.ResponseWriter, request *http.Request) {
	translator := handler.messages.For(requestutil.Language(request))
	respond.OK(writer, handler.engine.Facets(translator))
}

// visitorFavorites returns an empty set for anonymous requests.
func (handler *Handler) visitorFavorites(ctx context.Context) Set {
	visitorID := ctxutil.GetVisitorID(ctx)
	if visitorID == "" || handler.favorites == nil {
		return Set{}
	}
	return NewSet(handler.favorites.IDs(ctx, visitorID)...)
}

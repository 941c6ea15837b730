// Copyright (c) 2026 Inner Garden. All rights reserved.

package collection

import (
	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/platform/i18n"
)

// # Search

// Result is an ordered search outcome.
type Result struct {
	Hits     []Hit
	Total    int
	SortBy   SortMode
	Tokens   []string
	Language i18n.Language
}

// IDs returns the ordered artwork ids.
func (result Result) IDs() []string {
	ids := make([]string, len(result.Hits))
	for i, hit := range result.Hits {
		ids[i] = hit.Artwork.ID
	}
	return ids
}

/*
Search runs the filter, score and rank pipeline over artworks.

Description: Candidates first pass the favourites restriction and the facet
predicates, then the conjunctive text gate. Survivors get their text score
plus facet affinity and are ordered by the resolved sort mode. Neither
argument is modified.

Parameters:
  - artworks: []*artwork.Artwork (catalogue snapshot)
  - state: FilterState
  - weights: Weights

Returns:
  - Result: ordered hits with the effective sort mode
*/
func Search(artworks []*artwork.Artwork, state FilterState, weights Weights) Result {
	lang := state.Language
	if !lang.IsValid() {
		lang = i18n.Default
	}

	tokens := tokenize(state.SearchQuery, lang)
	mode := ResolveSort(state.SortBy, tokens)

	hits := make([]Hit, 0, len(artworks))
	for _, item := range artworks {
		if item == nil {
			continue
		}
		if state.FavoritesOnly && !state.Favorites.Has(item.ID) {
			continue
		}
		if !Passes(item, state) {
			continue
		}

		text, matched, ok := TextScore(item, tokens, lang, weights)
		if !ok {
			continue
		}

		hits = append(hits, Hit{
			Artwork:       item,
			Score:         text + Affinity(item, state, weights),
			TextScore:     text,
			MatchedTokens: matched,
		})
	}

	Rank(hits, mode, lang)

	return Result{
		Hits:     hits,
		Total:    len(hits),
		SortBy:   mode,
		Tokens:   tokens,
		Language: lang,
	}
}

// # Engine

// Engine binds the search pipeline to a live [Catalog].
type Engine struct {
	catalog *Catalog
	weights Weights
}

// NewEngine creates a new [Engine].
func NewEngine(catalog *Catalog, weights Weights) *Engine {
	return &Engine{catalog: catalog, weights: weights}
}

// Search runs [Search] over the current catalogue snapshot.
func (engine *Engine) Search(state FilterState) Result {
	return Search(engine.catalog.Snapshot(), state, engine.weights)
}

// # Facet Vocabulary

// Localizer is the localisation collaborator of a single request.
type Localizer interface {
	CurrentLanguage() i18n.Language
	Translate(key, fallback string) string
}

// FacetOption is one selectable value with its caption and catalogue count.
type FacetOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FacetGroup is a facet kind with its options.
type FacetGroup struct {
	Kind    FacetKind     `json:"kind"`
	Label   string        `json:"label"`
	Options []FacetOption `json:"options"`
}

// Option is a captioned choice without a count (sort modes, price brackets).
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Vocabulary is everything the collection browser needs to render its filters.
type Vocabulary struct {
	Language string       `json:"language"`
	Facets   []FacetGroup `json:"facets"`
	Prices   []Option     `json:"prices"`
	Sorts    []Option     `json:"sorts"`
	Total    int          `json:"total"`
}

// Facets builds the filter vocabulary in the localizer's language.
// Counts are over the whole catalogue.
func (engine *Engine) Facets(localizer Localizer) Vocabulary {
	return Facets(engine.catalog.Snapshot(), localizer)
}

// Facets builds the filter vocabulary for artworks.
func Facets(artworks []*artwork.Artwork, localizer Localizer) Vocabulary {
	lang := localizer.CurrentLanguage()

	counts := make(map[FacetKind]map[string]int, len(FacetKinds))
	for _, kind := range FacetKinds {
		counts[kind] = map[string]int{}
	}
	for _, item := range artworks {
		for _, kind := range FacetKinds {
			seen := map[string]bool{}
			for _, value := range facetValues(item, kind) {
				if !seen[value] {
					seen[value] = true
					counts[kind][value]++
				}
			}
		}
	}

	vocabulary := Vocabulary{
		Language: lang.String(),
		Total:    len(artworks),
	}

	for _, kind := range FacetKinds {
		group := FacetGroup{
			Kind:  kind,
			Label: localizer.Translate("facet."+string(kind), string(kind)),
		}
		for _, term := range vocabularyTerms(kind, lang) {
			group.Options = append(group.Options, FacetOption{
				ID:    term.ID,
				Label: term.Label,
				Count: counts[kind][term.ID],
			})
		}
		vocabulary.Facets = append(vocabulary.Facets, group)
	}

	vocabulary.Prices = append(vocabulary.Prices, Option{ID: PriceAny, Label: localizer.Translate("price."+PriceAny, PriceAny)})
	for _, bracket := range PriceBrackets {
		vocabulary.Prices = append(vocabulary.Prices, Option{ID: bracket.ID, Label: localizer.Translate("price."+bracket.ID, bracket.ID)})
	}

	for _, mode := range SortModes {
		vocabulary.Sorts = append(vocabulary.Sorts, Option{ID: string(mode), Label: localizer.Translate("sort."+string(mode), string(mode))})
	}

	return vocabulary
}

// vocabularyTerms returns every known value of kind, captioned in lang.
func vocabularyTerms(kind FacetKind, lang i18n.Language) []artwork.Term {
	var terms []artwork.Term
	switch kind {
	case FacetCategory:
		for _, value := range artwork.Categories {
			terms = append(terms, artwork.NewTerm(string(value), value.Label(), lang))
		}
	case FacetMood:
		for _, value := range artwork.Moods {
			terms = append(terms, artwork.NewTerm(string(value), value.Label(), lang))
		}
	case FacetPalette:
		for _, value := range artwork.Palettes {
			terms = append(terms, artwork.NewTerm(string(value), value.Label(), lang))
		}
	case FacetSpace:
		for _, value := range artwork.Spaces {
			terms = append(terms, artwork.NewTerm(string(value), value.Label(), lang))
		}
	case FacetAvailability:
		for _, value := range artwork.Availabilities {
			terms = append(terms, artwork.NewTerm(string(value), value.Label(), lang))
		}
	}
	return terms
}

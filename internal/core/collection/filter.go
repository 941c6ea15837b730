// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package collection is the search engine behind the gallery's collection browser.

It combines hard facet filtering, tiered multi-language text relevance and
deterministic sorting over an in-memory [Catalog] of normalised artworks.

Pipeline (per request, over the whole snapshot):

  - Tokenize: the query is folded and split exactly like the search index.
  - Filter: facet predicates reject candidates before any scoring.
  - Score: every query token must match in some fallback language; affinity
    with the active facets and editorial priority are added on top.
  - Rank: a total comparator chain per sort mode, applied with a stable sort.

[Search] is a pure function of (artworks, FilterState); it never mutates
either argument.
*/
package collection

import (
	"slices"

	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/platform/i18n"
)

// # Facet Kinds

// FacetKind is one of the closed set of filterable attributes.
type FacetKind string

const (
	FacetCategory     FacetKind = "category"
	FacetMood         FacetKind = "mood"
	FacetPalette      FacetKind = "palette"
	FacetSpace        FacetKind = "space"
	FacetAvailability FacetKind = "availability"
)

// FacetKinds lists every [FacetKind] in display order.
var FacetKinds = []FacetKind{FacetCategory, FacetMood, FacetPalette, FacetSpace, FacetAvailability}

// IsValid reports whether k is a known facet kind.
func (k FacetKind) IsValid() bool {
	return slices.Contains(FacetKinds, k)
}

// # Value Sets

// Set is a set of facet value ids or artwork ids. A nil Set is empty.
type Set map[string]struct{}

// NewSet builds a [Set] from values.
func NewSet(values ...string) Set {
	set := make(Set, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

// Has reports membership.
func (s Set) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Values returns the members in ascending order.
func (s Set) Values() []string {
	values := make([]string, 0, len(s))
	for value := range s {
		values = append(values, value)
	}
	slices.Sort(values)
	return values
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for value := range s {
		clone[value] = struct{}{}
	}
	return clone
}

// # Filter State

// FilterState is everything a visitor has selected in the collection browser.
//
// Empty facet sets match everything. PriceRange "" is treated as [PriceAny].
type FilterState struct {
	Categories   Set
	Moods        Set
	Palettes     Set
	Spaces       Set
	Availability Set

	PriceRange  string
	SearchQuery string
	SortBy      SortMode

	// Language is the visitor's current UI language.
	Language i18n.Language

	// FavoritesOnly restricts results to ids in Favorites.
	FavoritesOnly bool
	Favorites     Set
}

// Facet returns the selection for kind.
func (state FilterState) Facet(kind FacetKind) Set {
	switch kind {
	case FacetCategory:
		return state.Categories
	case FacetMood:
		return state.Moods
	case FacetPalette:
		return state.Palettes
	case FacetSpace:
		return state.Spaces
	case FacetAvailability:
		return state.Availability
	}
	return nil
}

// WithFacet returns a copy of state whose selection for kind is values.
// Unknown kinds leave the state unchanged.
func (state FilterState) WithFacet(kind FacetKind, values Set) FilterState {
	switch kind {
	case FacetCategory:
		state.Categories = values
	case FacetMood:
		state.Moods = values
	case FacetPalette:
		state.Palettes = values
	case FacetSpace:
		state.Spaces = values
	case FacetAvailability:
		state.Availability = values
	}
	return state
}

// Toggle returns a copy of state with value added to or removed from the
// selection for kind. The receiver's sets are never modified.
func (state FilterState) Toggle(kind FacetKind, value string) FilterState {
	selection := state.Facet(kind).Clone()
	if selection.Has(value) {
		delete(selection, value)
	} else {
		selection[value] = struct{}{}
	}
	return state.WithFacet(kind, selection)
}

// IsEmpty reports whether no facet, price bracket or query is active.
func (state FilterState) IsEmpty() bool {
	for _, kind := range FacetKinds {
		if len(state.Facet(kind)) > 0 {
			return false
		}
	}
	return isAnyPrice(state.PriceRange) && len(tokenize(state.SearchQuery, state.Language)) == 0 && !state.FavoritesOnly
}

// # Predicates

// facetValues returns the artwork's values for kind.
func facetValues(a *artwork.Artwork, kind FacetKind) []string {
	switch kind {
	case FacetCategory:
		return []string{string(a.Category)}
	case FacetMood:
		values := make([]string, len(a.Moods))
		for i, mood := range a.Moods {
			values[i] = string(mood)
		}
		return values
	case FacetPalette:
		return []string{string(a.Palette)}
	case FacetSpace:
		values := make([]string, len(a.Spaces))
		for i, space := range a.Spaces {
			values[i] = string(space)
		}
		return values
	case FacetAvailability:
		return []string{string(a.Availability)}
	}
	return nil
}

// matchCount counts the artwork's values for kind that are selected.
func matchCount(a *artwork.Artwork, kind FacetKind, selection Set) int {
	count := 0
	for _, value := range facetValues(a, kind) {
		if selection.Has(value) {
			count++
		}
	}
	return count
}

/*
Passes evaluates the hard facet predicates.

Description: Every facet kind passes when its selection is empty, otherwise
when at least one of the artwork's values is selected (single-valued facets
reduce to membership). The price bracket must contain the numeric price.
All predicates are AND-combined. Unknown facet values never match anything.
*/
func Passes(a *artwork.Artwork, state FilterState) bool {
	for _, kind := range FacetKinds {
		selection := state.Facet(kind)
		if len(selection) == 0 {
			continue
		}
		if matchCount(a, kind, selection) == 0 {
			return false
		}
	}

	return priceMatches(a, state.PriceRange)
}

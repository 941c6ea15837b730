// Copyright (c) 2026 Inner Garden. All rights reserved.

package collection

import (
	"math"
	"strings"

	"github.com/innergarden/gallery/internal/core/artwork"
)

// PriceAny disables the price filter.
const PriceAny = "any"

// PriceBracket is a named, inclusive price interval in catalogue currency.
type PriceBracket struct {
	ID  string
	Min float64
	Max float64
}

// PriceBrackets lists the selectable brackets in display order.
var PriceBrackets = []PriceBracket{
	{ID: "under-2000", Min: 0, Max: 2000},
	{ID: "2000-4000", Min: 2000, Max: 4000},
	{ID: "4000-8000", Min: 4000, Max: 8000},
	{ID: "over-8000", Min: 8000, Max: math.Inf(1)},
}

// Contains reports whether amount lies within [Min, Max].
func (bracket PriceBracket) Contains(amount float64) bool {
	return amount >= bracket.Min && amount <= bracket.Max
}

// LookupBracket finds a bracket by id.
func LookupBracket(id string) (PriceBracket, bool) {
	for _, bracket := range PriceBrackets {
		if bracket.ID == id {
			return bracket, true
		}
	}
	return PriceBracket{}, false
}

func isAnyPrice(id string) bool {
	id = strings.TrimSpace(id)
	return id == "" || id == PriceAny
}

// priceMatches applies the price bracket predicate. An unknown bracket id
// matches nothing, and neither does a missing price under a real bracket.
func priceMatches(a *artwork.Artwork, rangeID string) bool {
	if isAnyPrice(rangeID) {
		return true
	}

	bracket, ok := LookupBracket(strings.TrimSpace(rangeID))
	if !ok {
		return false
	}

	amount, ok := a.PriceAmount()
	return ok && bracket.Contains(amount)
}

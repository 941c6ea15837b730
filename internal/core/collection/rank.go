// Copyright (c) 2026 Inner Garden. All rights reserved.

package collection

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"

	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/platform/i18n"
)

// # Sort Modes

// SortMode is a collection ordering.
type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortYearDesc  SortMode = "year-desc"
	SortYearAsc   SortMode = "year-asc"
	SortSizeDesc  SortMode = "size-desc"
	SortSizeAsc   SortMode = "size-asc"
	SortNameAsc   SortMode = "name-asc"
)

// SortModes lists every [SortMode] in display order.
var SortModes = []SortMode{
	SortFeatured, SortRelevance,
	SortPriceAsc, SortPriceDesc,
	SortYearDesc, SortYearAsc,
	SortSizeDesc, SortSizeAsc,
	SortNameAsc,
}

// ParseSortMode resolves a raw sort id. Unknown ids resolve to [SortFeatured].
func ParseSortMode(raw string) SortMode {
	mode := SortMode(strings.ToLower(strings.TrimSpace(raw)))
	if slices.Contains(SortModes, mode) {
		return mode
	}
	return SortFeatured
}

// ResolveSort returns the mode actually applied: relevance without a text
// query has nothing to rank by and becomes featured.
func ResolveSort(mode SortMode, tokens []string) SortMode {
	mode = ParseSortMode(string(mode))
	if mode == SortRelevance && len(tokens) == 0 {
		return SortFeatured
	}
	return mode
}

// # Ranking

// Hit is an artwork that passed filtering, with its scores.
type Hit struct {
	Artwork       *artwork.Artwork
	Score         float64
	TextScore     float64
	MatchedTokens int
}

type comparator func(a, b Hit) int

/*
Rank orders hits in place for mode.

Description: Every mode is a comparator chain ending with id ascending, so the
order is total and independent of input order. The sort is stable.
name-asc compares titles in lang with a collator built for this call.

Parameters:
  - hits: []Hit
  - mode: SortMode (already resolved)
  - lang: i18n.Language
*/
func Rank(hits []Hit, mode SortMode, lang i18n.Language) {
	var chain []comparator

	switch mode {
	case SortRelevance:
		chain = []comparator{byScoreDesc, byPriorityDesc, byYearDesc}
	case SortPriceAsc:
		chain = []comparator{byPrice(false)}
	case SortPriceDesc:
		chain = []comparator{byPrice(true)}
	case SortYearDesc:
		chain = []comparator{byYearDesc}
	case SortYearAsc:
		chain = []comparator{byYearAsc}
	case SortSizeDesc:
		chain = []comparator{byAreaDesc}
	case SortSizeAsc:
		chain = []comparator{byAreaAsc}
	case SortNameAsc:
		chain = []comparator{byTitle(lang)}
	default:
		chain = []comparator{byPriorityDesc, byScoreDesc, byYearDesc}
	}
	chain = append(chain, byID)

	slices.SortStableFunc(hits, func(a, b Hit) int {
		for _, compare := range chain {
			if result := compare(a, b); result != 0 {
				return result
			}
		}
		return 0
	})
}

func byID(a, b Hit) int {
	return strings.Compare(a.Artwork.ID, b.Artwork.ID)
}

func byScoreDesc(a, b Hit) int {
	return cmp.Compare(b.Score, a.Score)
}

func byPriorityDesc(a, b Hit) int {
	return cmp.Compare(b.Artwork.PriorityValue(), a.Artwork.PriorityValue())
}

func byYearDesc(a, b Hit) int {
	return cmp.Compare(b.Artwork.YearValue(), a.Artwork.YearValue())
}

func byYearAsc(a, b Hit) int {
	return cmp.Compare(a.Artwork.YearValue(), b.Artwork.YearValue())
}

func byAreaDesc(a, b Hit) int {
	return cmp.Compare(b.Artwork.Area, a.Artwork.Area)
}

func byAreaAsc(a, b Hit) int {
	return cmp.Compare(a.Artwork.Area, b.Artwork.Area)
}

// byPrice keeps artworks without a price at the end in both directions.
func byPrice(descending bool) comparator {
	return func(a, b Hit) int {
		left, leftOK := a.Artwork.PriceAmount()
		right, rightOK := b.Artwork.PriceAmount()

		switch {
		case !leftOK && !rightOK:
			return 0
		case !leftOK:
			return 1
		case !rightOK:
			return -1
		}

		if descending {
			return cmp.Compare(right, left)
		}
		return cmp.Compare(left, right)
	}
}

func byTitle(lang i18n.Language) comparator {
	if !lang.IsValid() {
		lang = i18n.Default
	}
	// A Collator holds a scratch buffer and is not safe for concurrent use.
	collator := collate.New(lang.Tag(), collate.IgnoreCase)

	return func(a, b Hit) int {
		return collator.CompareString(a.Artwork.Title.Get(lang), b.Artwork.Title.Get(lang))
	}
}

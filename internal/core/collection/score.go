// Copyright (c) 2026 Inner Garden. All rights reserved.

package collection

import (
	"strings"

	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/pkg/textfold"
)

// # Relevance Weights

// Weights are the tunable relevance constants.
type Weights struct {
	Exact        float64
	Substring    float64
	Category     float64
	Mood         float64
	// PrimaryMood is added when the artwork's first mood is selected. Off by default.
	PrimaryMood  float64
	Palette      float64
	Space        float64
	Availability float64
	Price        float64
}

// DefaultWeights returns the shipped relevance constants.
func DefaultWeights() Weights {
	return Weights{
		Exact:        6,
		Substring:    3,
		Category:     2,
		Mood:         1.5,
		PrimaryMood:  0,
		Palette:      1,
		Space:        1,
		Availability: 1.5,
		Price:        1.5,
	}
}

// # Text Relevance

// tokenize folds and splits a query the same way the search index was built.
func tokenize(query string, lang i18n.Language) []string {
	if !lang.IsValid() {
		lang = i18n.Default
	}
	return textfold.Tokenize(lang.Tag(), query)
}

// fallbackOrder returns current, uk, en without duplicates.
func fallbackOrder(current i18n.Language) []i18n.Language {
	order := make([]i18n.Language, 0, 3)
	for _, lang := range []i18n.Language{current, i18n.Ukrainian, i18n.English} {
		if !lang.IsValid() {
			continue
		}
		duplicate := false
		for _, seen := range order {
			if seen == lang {
				duplicate = true
				break
			}
		}
		if !duplicate {
			order = append(order, lang)
		}
	}
	return order
}

// tokenScore returns the best tier reached by token across the fallback languages.
func tokenScore(a *artwork.Artwork, token string, languages []i18n.Language, weights Weights) float64 {
	best := 0.0
	for _, lang := range languages {
		entry, ok := a.SearchIndex[lang]
		if !ok {
			continue
		}
		if _, exact := entry.Tokens[token]; exact {
			best = max(best, weights.Exact)
			continue
		}
		if strings.Contains(entry.Text, token) {
			best = max(best, weights.Substring)
		}
	}
	return best
}

/*
TextScore applies the conjunctive token gate.

Description: Each token is scored independently as the maximum tier reached
in any fallback language. A token that reaches no tier excludes the artwork.

Parameters:
  - a: *artwork.Artwork
  - tokens: []string (already folded)
  - lang: i18n.Language (current language, checked first)
  - weights: Weights

Returns:
  - float64: sum of the per-token tier scores
  - int: number of matched tokens
  - bool: false when any token failed to match
*/
func TextScore(a *artwork.Artwork, tokens []string, lang i18n.Language, weights Weights) (float64, int, bool) {
	if len(tokens) == 0 {
		return 0, 0, true
	}

	languages := fallbackOrder(lang)
	total := 0.0
	for _, token := range tokens {
		score := tokenScore(a, token, languages, weights)
		if score <= 0 {
			return 0, 0, false
		}
		total += score
	}

	return total, len(tokens), true
}

// Affinity rewards artworks that match the active facets, plus their editorial priority.
func Affinity(a *artwork.Artwork, state FilterState, weights Weights) float64 {
	score := float64(a.PriorityValue())

	if state.Categories.Has(string(a.Category)) {
		score += weights.Category
	}

	score += float64(matchCount(a, FacetMood, state.Moods)) * weights.Mood
	if len(a.Moods) > 0 && state.Moods.Has(string(a.Moods[0])) {
		score += weights.PrimaryMood
	}

	if state.Palettes.Has(string(a.Palette)) {
		score += weights.Palette
	}

	score += float64(matchCount(a, FacetSpace, state.Spaces)) * weights.Space

	if state.Availability.Has(string(a.Availability)) {
		score += weights.Availability
	}

	if !isAnyPrice(state.PriceRange) && priceMatches(a, state.PriceRange) {
		score += weights.Price
	}

	return score
}

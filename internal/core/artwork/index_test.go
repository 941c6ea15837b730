// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/platform/i18n"
)

/*
TestBuildSearchIndex verifies that every language indexes every translation and facet label.
*/
func TestBuildSearchIndex(t *testing.T) {
	normalized := artwork.Normalize(goldenWave())

	german := normalized.SearchIndex[i18n.German]

	// Own-language labels and foreign titles are both present.
	assert.Contains(t, german.Text, "luxus")
	assert.Contains(t, german.Text, "warme töne")
	assert.Contains(t, german.Text, "золота хвиля")
	assert.Contains(t, german.Text, "golden wave")

	// Tags fall back to Ukrainian when German has none.
	_, hasTag := german.Tokens["золото"]
	assert.True(t, hasTag)

	english := normalized.SearchIndex[i18n.English]
	_, hasGold := english.Tokens["gold"]
	assert.True(t, hasGold)
	assert.NotContains(t, english.Text, "срібло")
}

func TestBuildSearchIndex_Folded(t *testing.T) {
	normalized := artwork.Normalize(goldenWave())

	for _, lang := range i18n.All {
		entry := normalized.SearchIndex[lang]
		assert.Equal(t, strings.ToLower(entry.Text), entry.Text, lang)
		for token := range entry.Tokens {
			assert.Contains(t, entry.Text, token)
		}
	}
}

func TestNewView(t *testing.T) {
	record := goldenWave()
	record.Description = artwork.Localized{UK: "Опис"}
	view := artwork.NewView(artwork.Normalize(record), i18n.German)

	// German falls back to Ukrainian first.
	assert.Equal(t, "Золота Хвиля", view.Title)
	assert.Equal(t, "Опис", view.Description)
	assert.Equal(t, artwork.Term{ID: "warm", Label: "Warme Töne"}, view.Palette)
	assert.Equal(t, "Verfügbar", view.Availability.Label)
	assert.Equal(t, []string{"золото"}, view.Tags)
	assert.Equal(t, "de", view.Language)
}

// Copyright (c) 2026 Inner Garden. All rights reserved.

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innergarden/gallery/internal/platform/i18n"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want i18n.Language
		ok   bool
	}{
		{"uk", i18n.Ukrainian, true},
		{"EN", i18n.English, true},
		{"de-AT", i18n.German, true},
		{" de ", i18n.German, true},
		{"fr", "", false},
		{"", "", false},
		{"not a tag", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := i18n.Parse(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, i18n.German, i18n.Negotiate("de", "en", i18n.Ukrainian))
	assert.Equal(t, i18n.English, i18n.Negotiate("", "en-US,de;q=0.5", i18n.Ukrainian))
	assert.Equal(t, i18n.Ukrainian, i18n.Negotiate("", "", i18n.Ukrainian))
	assert.Equal(t, i18n.Ukrainian, i18n.Negotiate("", "", i18n.Language("xx")))
}

/*
TestCatalogue_Translate verifies lookups and the uk, en, de fallback chain.
*/
func TestCatalogue_Translate(t *testing.T) {
	catalogue := i18n.NewCatalogue(i18n.Messages{
		"sort.featured": {i18n.Ukrainian: "Рекомендовані", i18n.English: "Featured"},
		"only.english":  {i18n.English: "English only"},
	})

	german := catalogue.For(i18n.German)
	assert.Equal(t, i18n.German, german.CurrentLanguage())
	assert.Equal(t, "Рекомендовані", german.Translate("sort.featured", "x"))
	assert.Equal(t, "English only", german.Translate("only.english", "x"))
	assert.Equal(t, "fallback", german.Translate("missing", "fallback"))

	english := catalogue.For(i18n.English)
	assert.Equal(t, "Featured", english.Translate("sort.featured", "x"))

	var nilCatalogue *i18n.Catalogue
	assert.Equal(t, "fallback", nilCatalogue.For(i18n.English).Translate("sort.featured", "fallback"))
}

func TestDefaultMessages_Complete(t *testing.T) {
	for key, translations := range i18n.DefaultMessages {
		for _, lang := range i18n.All {
			assert.NotEmpty(t, translations[lang], "%s/%s", key, lang)
		}
	}
}

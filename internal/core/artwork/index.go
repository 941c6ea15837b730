// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

import (
	"strings"

	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/pkg/textfold"
)

// # Search Index

/*
BuildSearchIndex collects every translatable text of a record per language.

Description: For each language L the index holds L's own value of each field
followed by the values of every other language, so a visitor reading the
German site can still find an artwork by its Ukrainian title. Free-text tags
come from L, else uk, else en. Facet labels are appended the same way as
text fields. The result is folded with L's casing rules and tokenised with
[textfold.Tokens], the same routine used for queries.

Parameters:
  - record: Record (already normalised)
  - availability: Availability (resolved state, indexed by its label)

Returns:
  - map[i18n.Language]IndexEntry: one entry per supported language
*/
func BuildSearchIndex(record Record, availability Availability) map[i18n.Language]IndexEntry {
	index := make(map[i18n.Language]IndexEntry, len(i18n.All))

	for _, lang := range i18n.All {
		var parts []string

		for _, field := range []Localized{record.Title, record.Excerpt, record.Description, record.Materials} {
			parts = appendLocalized(parts, field, lang)
		}

		parts = append(parts, tagsFor(record.Tags, lang)...)

		for _, mood := range record.Moods {
			parts = appendLocalized(parts, mood.Label(), lang)
		}
		parts = appendLocalized(parts, record.Palette.Label(), lang)
		for _, space := range record.Spaces {
			parts = appendLocalized(parts, space.Label(), lang)
		}
		parts = appendLocalized(parts, availability.Label(), lang)

		text := textfold.Lower(lang.Tag(), strings.Join(parts, " "))
		index[lang] = IndexEntry{
			Text:   text,
			Tokens: textfold.TokenSet(text),
		}
	}

	return index
}

// appendLocalized appends lang's value first, then every other language's value.
func appendLocalized(parts []string, value Localized, lang i18n.Language) []string {
	if own := value.In(lang); own != "" {
		parts = append(parts, own)
	}
	for _, other := range i18n.All {
		if other == lang {
			continue
		}
		if text := value.In(other); text != "" {
			parts = append(parts, text)
		}
	}
	return parts
}

// tagsFor returns lang's tags, falling back to uk then en.
func tagsFor(tags LocalizedList, lang i18n.Language) []string {
	for _, candidate := range []i18n.Language{lang, i18n.Ukrainian, i18n.English} {
		if list := tags.In(candidate); len(list) > 0 {
			return list
		}
	}
	return nil
}

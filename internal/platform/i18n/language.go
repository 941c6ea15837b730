// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package i18n defines the closed set of languages the gallery is published in
and the localisation collaborator consumed by the catalogue.

Architecture:

  - Language: a closed enumeration (uk, en, de). Anything else is rejected at
    the boundary, so downstream code never handles an unknown locale.
  - Negotiation: resolves the request language from an explicit code or the
    Accept-Language header via [golang.org/x/text/language].
  - Translator: the `translate(key, fallback)` and `currentLanguage()` pair
    handed to the rest of the service.
*/
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// # Supported Languages

// Language is a supported content language code.
type Language string

const (
	// Ukrainian is the primary publication language and first fallback.
	Ukrainian Language = "uk"

	// English is the second fallback.
	English Language = "en"

	// German is the last fallback.
	German Language = "de"
)

// Default is the language used when nothing else can be negotiated.
const Default = Ukrainian

// All lists every supported language in fallback order.
var All = []Language{Ukrainian, English, German}

// IsValid reports whether l is a supported [Language].
func (l Language) IsValid() bool {
	switch l {
	case Ukrainian, English, German:
		return true
	}
	return false
}

// Tag returns the BCP 47 tag used for locale-aware casing and collation.
func (l Language) Tag() language.Tag {
	switch l {
	case Ukrainian:
		return language.Ukrainian
	case English:
		return language.English
	case German:
		return language.German
	}
	return language.Und
}

// String implements [fmt.Stringer].
func (l Language) String() string { return string(l) }

// Parse resolves a raw language code ("uk", "EN", "de-AT") to a [Language].
func Parse(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}

	base, _ := tag.Base()
	candidate := Language(base.String())
	if !candidate.IsValid() {
		return "", false
	}

	return candidate, true
}

// # Negotiation

var matcher = language.NewMatcher([]language.Tag{
	language.Ukrainian,
	language.English,
	language.German,
})

// Negotiate picks the request language.
//
// An explicit code wins when it is supported; otherwise the Accept-Language
// header is matched against the supported set; otherwise fallback is used.
func Negotiate(explicit, acceptLanguage string, fallback Language) Language {
	if lang, ok := Parse(explicit); ok {
		return lang
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, index, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return All[index]
			}
		}
	}

	if fallback.IsValid() {
		return fallback
	}
	return Default
}

// Copyright (c) 2026 Inner Garden. All rights reserved.

package i18n

// # Message Catalogue

// Messages maps a message key to its text in each language.
type Messages map[string]map[Language]string

// Catalogue holds the server-side message table.
//
// It is read-only after construction and safe for concurrent use.
type Catalogue struct {
	messages Messages
}

// NewCatalogue builds a [Catalogue] from a message table.
func NewCatalogue(messages Messages) *Catalogue {
	return &Catalogue{messages: messages}
}

// Lookup returns the message for key in lang.
//
// Missing translations walk the same fallback chain as content fields:
// lang, then uk, en, de. The fallback argument is returned when no language
// has the key.
func (catalogue *Catalogue) Lookup(lang Language, key, fallback string) string {
	entry, ok := catalogue.messages[key]
	if !ok {
		return fallback
	}

	if text := entry[lang]; text != "" {
		return text
	}
	for _, candidate := range All {
		if text := entry[candidate]; text != "" {
			return text
		}
	}

	return fallback
}

// # Request Translator

// Translator binds a [Catalogue] to the language of a single request.
type Translator struct {
	catalogue *Catalogue
	lang      Language
}

// For returns a [Translator] for lang. A nil catalogue translates every key
// to its fallback.
func (catalogue *Catalogue) For(lang Language) Translator {
	if !lang.IsValid() {
		lang = Default
	}
	return Translator{catalogue: catalogue, lang: lang}
}

// CurrentLanguage returns the bound language.
func (translator Translator) CurrentLanguage() Language {
	return translator.lang
}

// Translate returns the text for key, or fallback when it is unknown.
func (translator Translator) Translate(key, fallback string) string {
	if translator.catalogue == nil {
		return fallback
	}
	return translator.catalogue.Lookup(translator.lang, key, fallback)
}

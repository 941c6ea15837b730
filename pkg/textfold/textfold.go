// Copyright (c) 2026 Inner Garden. All rights reserved.

// Package textfold lowercases and tokenises free text for search.
//
// # Usage
//
// The search index and the query parser must fold text identically, otherwise
// queries silently stop matching. Both sides go through [Tokenize] (or
// [Lower] followed by [Tokens]) and nothing else.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Lower folds s to lower case using the casing rules of tag.
//
// The input is NFC-normalised first so that precomposed and decomposed forms
// of the same letter fold to the same string. When the locale-aware caser
// fails it falls back to [strings.ToLower].
func Lower(tag language.Tag, s string) (folded string) {
	if s == "" {
		return ""
	}

	composed := norm.NFC.String(s)

	defer func() {
		if recover() != nil {
			folded = strings.ToLower(composed)
		}
	}()

	// A Caser keeps state between calls, so one is built per invocation.
	folded = cases.Lower(tag).String(composed)
	if folded == "" {
		return strings.ToLower(composed)
	}

	return folded
}

// Tokens splits already-folded text into maximal runs of Unicode letters and
// digits. Punctuation, whitespace and apostrophes act as separators.
// Combining marks are kept when they continue a run.
func Tokens(text string) []string {
	var tokens []string
	start := -1

	for index, r := range text {
		if isWordRune(r) || (start >= 0 && unicode.Is(unicode.Mn, r)) {
			if start < 0 {
				start = index
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:index])
			start = -1
		}
	}

	if start >= 0 {
		tokens = append(tokens, text[start:])
	}

	return tokens
}

// Tokenize folds s with [Lower] and splits it with [Tokens].
// Blank input yields a nil slice.
func Tokenize(tag language.Tag, s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return Tokens(Lower(tag, s))
}

// TokenSet returns the distinct tokens of already-folded text.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokens(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

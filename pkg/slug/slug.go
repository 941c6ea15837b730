// Copyright (c) 2026 Inner Garden. All rights reserved.

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the human-readable half of an artwork URL (e.g. "zolota-khvylia").
// Cyrillic is transliterated with the Ukrainian national romanization table;
// Latin accents are stripped.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// ukrainian maps lowercase Cyrillic letters to their Latin romanization.
// Word-initial forms differ for є, ї, й, ю, я.
var ukrainian = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d", 'е': "e",
	'є': "ie", 'ж': "zh", 'з': "z", 'и': "y", 'і': "i", 'ї': "i", 'й': "i",
	'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ь': "", 'ю': "iu", 'я': "ia", '\'': "", '’': "",
	'ё': "e", 'ы': "y", 'э': "e", 'ъ': "",
}

var wordInitial = map[rune]string{
	'є': "ye", 'ї': "yi", 'й': "y", 'ю': "yu", 'я': "ya",
}

// German letters with conventional two-letter spellings.
var german = map[rune]string{
	'ä': "ae", 'ö': "oe", 'ü': "ue", 'ß': "ss",
}

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Lowercases and transliterates Cyrillic and German umlauts.
// 2. Normalizes to NFD and removes combining marks (accents).
// 3. Replaces non-alphanumeric characters with hyphens.
// 4. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {

	// 1. Transliterate
	result := transliterate(strings.ToLower(s))

	// 2. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ = transform.String(t, result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

func transliterate(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	atWordStart := true
	for _, r := range s {
		if replacement, ok := wordInitial[r]; ok && atWordStart {
			builder.WriteString(replacement)
		} else if replacement, ok := ukrainian[r]; ok {
			builder.WriteString(replacement)
		} else if replacement, ok := german[r]; ok {
			builder.WriteString(replacement)
		} else {
			builder.WriteRune(r)
		}
		atWordStart = !unicode.IsLetter(r) && r != '\'' && r != '’'
	}

	return builder.String()
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

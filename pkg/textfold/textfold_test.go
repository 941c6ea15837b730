// Copyright (c) 2026 Inner Garden. All rights reserved.

package textfold_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"pgregory.net/rapid"

	"github.com/innergarden/gallery/pkg/textfold"
)

func TestLower(t *testing.T) {
	assert.Equal(t, "золота хвиля", textfold.Lower(language.Ukrainian, "ЗОЛОТА Хвиля"))
	assert.Equal(t, "warme töne", textfold.Lower(language.German, "Warme TÖNE"))
	assert.Equal(t, "", textfold.Lower(language.English, ""))

	// Decomposed and precomposed forms fold to the same string.
	assert.Equal(t, "\u00f6", textfold.Lower(language.German, "O\u0308"))
}

/*
TestTokenize covers separators, digits and combining marks.
*/
func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Blank", "   ", nil},
		{"Cyrillic", "Золота  Хвиля!", []string{"золота", "хвиля"}},
		{"Punctuation", "oil, canvas; 90x120", []string{"oil", "canvas", "90x120"}},
		{"Apostrophe", "п'ять", []string{"п", "ять"}},
		{"CombiningMark", "и\u0306ти", []string{"йти"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textfold.Tokenize(language.Ukrainian, tt.input))
		})
	}
}

func TestTokenSet(t *testing.T) {
	set := textfold.TokenSet("gold gold silver")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "gold")
}

/*
TestTokens_Properties checks that tokens never contain separators and are substrings of the input.
*/
func TestTokens_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.StringOf(rapid.SampledFrom([]rune("abcЖжö1 ,.-'"))).Draw(t, "input")
		folded := textfold.Lower(language.Ukrainian, input)

		for _, token := range textfold.Tokens(folded) {
			assert.NotEmpty(t, token)
			assert.True(t, strings.Contains(folded, token))
			assert.False(t, strings.ContainsAny(token, " ,.-'"))
		}
	})
}

// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

import (
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/pkg/slice"
)

// # Localised Views

// Term is a facet value with its caption in the request language.
type Term struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// View is an artwork rendered for one language.
//
// Text fields are resolved with [Localized.Get], so a missing German
// description shows the Ukrainian one instead of nothing.
type View struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Excerpt      string     `json:"excerpt"`
	Description  string     `json:"description"`
	Materials    string     `json:"materials"`
	Category     Term       `json:"category"`
	Moods        []Term     `json:"moods"`
	Palette      Term       `json:"palette"`
	Spaces       []Term     `json:"spaces"`
	Availability Term       `json:"availability"`
	Price        *Price     `json:"price,omitempty"`
	Dimensions   Dimensions `json:"dimensions"`
	Area         float64    `json:"area"`
	Year         *int       `json:"year,omitempty"`
	Tags         []string   `json:"tags"`
	Priority     int        `json:"priority"`
	ImageURL     string     `json:"image_url,omitempty"`
	Favorite     bool       `json:"favorite"`
	Score        *float64   `json:"score,omitempty"`
	Language     string     `json:"language"`
}

// NewView renders a for lang.
func NewView(a *Artwork, lang i18n.Language) View {
	if !lang.IsValid() {
		lang = i18n.Default
	}

	return View{
		ID:           a.ID,
		Slug:         a.Slug,
		Title:        a.Title.Get(lang),
		Excerpt:      a.Excerpt.Get(lang),
		Description:  a.Description.Get(lang),
		Materials:    a.Materials.Get(lang),
		Category:     NewTerm(string(a.Category), a.Category.Label(), lang),
		Moods:        slice.Map(a.Moods, func(mood Mood) Term { return NewTerm(string(mood), mood.Label(), lang) }),
		Palette:      NewTerm(string(a.Palette), a.Palette.Label(), lang),
		Spaces:       slice.Map(a.Spaces, func(space Space) Term { return NewTerm(string(space), space.Label(), lang) }),
		Availability: NewTerm(string(a.Availability), a.Availability.Label(), lang),
		Price:        a.Price,
		Dimensions:   a.Dimensions,
		Area:         a.Area,
		Year:         a.Year,
		Tags:         tagsFor(a.Tags, lang),
		Priority:     a.PriorityValue(),
		ImageURL:     a.ImageURL,
		Language:     lang.String(),
	}
}

// NewTerm builds a [Term], using the raw id when no label is known.
func NewTerm(id string, label Localized, lang i18n.Language) Term {
	caption := label.Get(lang)
	if caption == "" {
		caption = id
	}
	return Term{ID: id, Label: caption}
}

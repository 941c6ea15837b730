// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package artwork defines the core domain entities of the Inner Garden catalogue.

It manages the lifecycle of artwork records, from the raw shape stored by the
admin panel to the normalised form the collection browser searches.

Core Responsibility:

  - Vocabulary: closed facet sets (category, mood, palette, space, availability).
  - Localisation: every display field carries one value per supported language.
  - Normalisation: derives area, availability and the per-language search index.

This package is the source of truth for all artwork data models.
*/
package artwork

import (
	"math"
	"strings"
	"time"

	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/pkg/pointer"
)

// # Domain Enums

// Category is the single stylistic category of an artwork.
type Category string

const (
	CategoryAbstract   Category = "abstract"
	CategoryNature     Category = "nature"
	CategoryGeometric  Category = "geometric"
	CategoryMinimalism Category = "minimalism"
)

// Categories lists every [Category] in display order.
var Categories = []Category{CategoryAbstract, CategoryNature, CategoryGeometric, CategoryMinimalism}

// IsValid reports whether c is a recognised [Category].
func (c Category) IsValid() bool {
	switch c {
	case CategoryAbstract, CategoryNature, CategoryGeometric, CategoryMinimalism:
		return true
	}
	return false
}

// Mood is an atmosphere tag. An artwork may carry several; the first is primary.
type Mood string

const (
	MoodCalm        Mood = "calm"
	MoodEnergy      Mood = "energy"
	MoodFocus       Mood = "focus"
	MoodLuxury      Mood = "luxury"
	MoodNature      Mood = "nature"
	MoodBalance     Mood = "balance"
	MoodHarmony     Mood = "harmony"
	MoodInspiration Mood = "inspiration"
)

// Moods lists every [Mood] in display order.
var Moods = []Mood{MoodCalm, MoodEnergy, MoodFocus, MoodLuxury, MoodNature, MoodBalance, MoodHarmony, MoodInspiration}

// IsValid reports whether m is a recognised [Mood].
func (m Mood) IsValid() bool {
	_, ok := moodLabels[m]
	return ok
}

// Palette is the dominant colour temperature of an artwork.
type Palette string

const (
	PaletteWarm    Palette = "warm"
	PaletteCool    Palette = "cool"
	PaletteNeutral Palette = "neutral"
	PaletteVibrant Palette = "vibrant"
)

// Palettes lists every [Palette] in display order.
var Palettes = []Palette{PaletteWarm, PaletteCool, PaletteNeutral, PaletteVibrant}

// IsValid reports whether p is a recognised [Palette].
func (p Palette) IsValid() bool {
	_, ok := paletteLabels[p]
	return ok
}

// Space is an interior the artwork is curated for.
type Space string

const (
	SpaceCorporate   Space = "corporate"
	SpaceHospitality Space = "hospitality"
	SpaceWellness    Space = "wellness"
	SpaceResidential Space = "residential"
)

// Spaces lists every [Space] in display order.
var Spaces = []Space{SpaceCorporate, SpaceHospitality, SpaceWellness, SpaceResidential}

// IsValid reports whether s is a recognised [Space].
func (s Space) IsValid() bool {
	_, ok := spaceLabels[s]
	return ok
}

// Availability is the derived sales state of an artwork.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityReserved    Availability = "reserved"
	AvailabilitySold        Availability = "sold"
	AvailabilityUnavailable Availability = "unavailable"
)

// Availabilities lists every [Availability] in display order.
var Availabilities = []Availability{AvailabilityAvailable, AvailabilityReserved, AvailabilitySold, AvailabilityUnavailable}

// IsValid reports whether a is a known availability state.
func (a Availability) IsValid() bool {
	_, ok := availabilityLabels[a]
	return ok
}

// # Localised Values

// Localized holds one string per supported language.
type Localized struct {
	UK string `json:"uk,omitempty"`
	EN string `json:"en,omitempty"`
	DE string `json:"de,omitempty"`
}

// In returns the trimmed value stored for lang, without fallback.
func (l Localized) In(lang i18n.Language) string {
	switch lang {
	case i18n.Ukrainian:
		return strings.TrimSpace(l.UK)
	case i18n.English:
		return strings.TrimSpace(l.EN)
	case i18n.German:
		return strings.TrimSpace(l.DE)
	}
	return ""
}

// Get returns the value for lang, falling back to uk, en, then de.
// It only returns "" when every language is blank.
func (l Localized) Get(lang i18n.Language) string {
	if value := l.In(lang); value != "" {
		return value
	}
	for _, fallback := range i18n.All {
		if value := l.In(fallback); value != "" {
			return value
		}
	}
	return ""
}

// IsZero reports whether every language is blank.
func (l Localized) IsZero() bool {
	return l.Get(i18n.Default) == ""
}

// LocalizedList holds one ordered string list per supported language.
type LocalizedList struct {
	UK []string `json:"uk,omitempty"`
	EN []string `json:"en,omitempty"`
	DE []string `json:"de,omitempty"`
}

// In returns the list stored for lang, without fallback.
func (l LocalizedList) In(lang i18n.Language) []string {
	switch lang {
	case i18n.Ukrainian:
		return l.UK
	case i18n.English:
		return l.EN
	case i18n.German:
		return l.DE
	}
	return nil
}

// # Core Entities

// Price is the asking price. A nil Amount means "price on request".
type Price struct {
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency,omitempty"`
}

// Currencies lists the ISO 4217 codes the gallery prices in.
var Currencies = []string{"EUR", "UAH", "USD"}

// Dimensions are measured in centimetres. Missing values are nil.
type Dimensions struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`
}

// Record is the raw artwork as stored by the admin panel.
//
// The availability flags overlap in the raw shape; [Normalize] resolves them
// into a single [Availability].
type Record struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug,omitempty"`
	Title       Localized     `json:"title"`
	Excerpt     Localized     `json:"excerpt"`
	Description Localized     `json:"description"`
	Materials   Localized     `json:"materials"`
	Category    Category      `json:"category"`
	Moods       []Mood        `json:"moods"`
	Palette     Palette       `json:"palette"`
	Spaces      []Space       `json:"spaces"`
	Price       *Price        `json:"price,omitempty"`
	Available   *bool         `json:"available,omitempty"`
	Reserved    bool          `json:"reserved"`
	Sold        bool          `json:"sold"`
	Dimensions  Dimensions    `json:"dimensions"`
	Year        *int          `json:"year,omitempty"`
	Tags        LocalizedList `json:"tags"`
	Priority    *int          `json:"priority,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// IndexEntry is the searchable form of an artwork in one language.
type IndexEntry struct {
	// Text is the folded concatenation of every indexed field, for substring matches.
	Text string
	// Tokens is the set of distinct tokens of Text, for exact matches.
	Tokens map[string]struct{}
}

// Artwork is a normalised [Record] ready for search.
//
// It is built once by [Normalize] and must be treated as immutable.
type Artwork struct {
	Record

	Area         float64                       `json:"area"`
	Availability Availability                  `json:"availability"`
	SearchIndex  map[i18n.Language]IndexEntry `json:"-"`
}

// PriceAmount returns the numeric price, if any.
func (a *Artwork) PriceAmount() (float64, bool) {
	if a.Price == nil || a.Price.Amount == nil {
		return 0, false
	}
	amount := *a.Price.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	return amount, true
}

// YearValue returns the year, or 0 when unknown.
func (a *Artwork) YearValue() int {
	return pointer.Val(a.Year)
}

// PriorityValue returns the editorial priority, defaulting to [DefaultPriority].
func (a *Artwork) PriorityValue() int {
	return pointer.Fallback(a.Priority, DefaultPriority)
}

// # Field Identifiers

// Field names for validation and query mapping.
const (
	FieldID          = "id"
	FieldSlug        = "slug"
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldMoods       = "moods"
	FieldPalette     = "palette"
	FieldSpaces      = "spaces"
	FieldPrice       = "price"
	FieldCurrency    = "price.currency"
	FieldDimensions  = "dimensions"
	FieldYear        = "year"
	FieldPriority    = "priority"
	FieldImageURL    = "image_url"
	FieldExcerpt     = "excerpt"
	FieldDescription = "description"
)

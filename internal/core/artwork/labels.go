// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

// # Facet Labels
//
// Human-readable facet labels per language. They are indexed for search so a
// visitor typing "спокій" or "Ruhe" finds calm artworks, and they are served
// to the collection browser as filter captions.

var categoryLabels = map[Category]Localized{
	CategoryAbstract:   {UK: "Абстракція", EN: "Abstract", DE: "Abstrakt"},
	CategoryNature:     {UK: "Природа", EN: "Nature", DE: "Natur"},
	CategoryGeometric:  {UK: "Геометрія", EN: "Geometric", DE: "Geometrisch"},
	CategoryMinimalism: {UK: "Мінімалізм", EN: "Minimalism", DE: "Minimalismus"},
}

var moodLabels = map[Mood]Localized{
	MoodCalm:        {UK: "Спокій", EN: "Calm", DE: "Ruhe"},
	MoodEnergy:      {UK: "Енергія", EN: "Energy", DE: "Energie"},
	MoodFocus:       {UK: "Фокус", EN: "Focus", DE: "Fokus"},
	MoodLuxury:      {UK: "Розкіш", EN: "Luxury", DE: "Luxus"},
	MoodNature:      {UK: "Природа", EN: "Nature", DE: "Natur"},
	MoodBalance:     {UK: "Баланс", EN: "Balance", DE: "Gleichgewicht"},
	MoodHarmony:     {UK: "Гармонія", EN: "Harmony", DE: "Harmonie"},
	MoodInspiration: {UK: "Натхнення", EN: "Inspiration", DE: "Inspiration"},
}

var paletteLabels = map[Palette]Localized{
	PaletteWarm:    {UK: "Теплі тони", EN: "Warm tones", DE: "Warme Töne"},
	PaletteCool:    {UK: "Холодні тони", EN: "Cool tones", DE: "Kühle Töne"},
	PaletteNeutral: {UK: "Нейтральні тони", EN: "Neutral tones", DE: "Neutrale Töne"},
	PaletteVibrant: {UK: "Яскраві кольори", EN: "Vibrant colours", DE: "Lebendige Farben"},
}

var spaceLabels = map[Space]Localized{
	SpaceCorporate:   {UK: "Офіс", EN: "Corporate", DE: "Büro"},
	SpaceHospitality: {UK: "Готелі та ресторани", EN: "Hospitality", DE: "Gastgewerbe"},
	SpaceWellness:    {UK: "Велнес", EN: "Wellness", DE: "Wellness"},
	SpaceResidential: {UK: "Житло", EN: "Residential", DE: "Wohnbereich"},
}

var availabilityLabels = map[Availability]Localized{
	AvailabilityAvailable:   {UK: "Доступна", EN: "Available", DE: "Verfügbar"},
	AvailabilityReserved:    {UK: "Зарезервована", EN: "Reserved", DE: "Reserviert"},
	AvailabilitySold:        {UK: "Продана", EN: "Sold", DE: "Verkauft"},
	AvailabilityUnavailable: {UK: "Недоступна", EN: "Unavailable", DE: "Nicht verfügbar"},
}

// Label returns the localised label of a category.
func (c Category) Label() Localized { return categoryLabels[c] }

// Label returns the localised label of a mood.
func (m Mood) Label() Localized { return moodLabels[m] }

// Label returns the localised label of a palette.
func (p Palette) Label() Localized { return paletteLabels[p] }

// Label returns the localised label of a space.
func (s Space) Label() Localized { return spaceLabels[s] }

// Label returns the localised label of an availability state.
func (a Availability) Label() Localized { return availabilityLabels[a] }

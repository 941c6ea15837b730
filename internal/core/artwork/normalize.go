// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

import (
	"math"
	"slices"

	"github.com/innergarden/gallery/pkg/pointer"
)

// DefaultPriority is the editorial weight of a record without one.
const DefaultPriority = 1

// # Normalisation

/*
Normalize derives the searchable form of a raw record.

Description: Resolves availability from the raw flags, computes the wall
area and builds the per-language search index. The input is never mutated:
slices and pointers are copied so later edits to the record cannot leak into
the catalogue.

Parameters:
  - record: Record (raw admin data)

Returns:
  - *Artwork: the normalised, immutable artwork
*/
func Normalize(record Record) *Artwork {
	normalized := cloneRecord(record)
	if normalized.Priority == nil {
		normalized.Priority = pointer.To(DefaultPriority)
	}

	availability := ResolveAvailability(normalized)

	return &Artwork{
		Record:       normalized,
		Area:         Area(normalized.Dimensions),
		Availability: availability,
		SearchIndex:  BuildSearchIndex(normalized, availability),
	}
}

// ResolveAvailability applies the flag precedence
// sold > reserved > explicitly unavailable > available.
func ResolveAvailability(record Record) Availability {
	switch {
	case record.Sold:
		return AvailabilitySold
	case record.Reserved:
		return AvailabilityReserved
	case record.Available != nil && !*record.Available:
		return AvailabilityUnavailable
	default:
		return AvailabilityAvailable
	}
}

// Area returns width × height, or 0 when either side is missing or not a
// positive finite number.
func Area(dimensions Dimensions) float64 {
	width, ok := measure(dimensions.Width)
	if !ok {
		return 0
	}
	height, ok := measure(dimensions.Height)
	if !ok {
		return 0
	}
	return width * height
}

func measure(value *float64) (float64, bool) {
	if value == nil {
		return 0, false
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// cloneRecord deep-copies every reference held by a record.
func cloneRecord(record Record) Record {
	clone := record
	clone.Moods = slices.Clone(record.Moods)
	clone.Spaces = slices.Clone(record.Spaces)
	clone.Tags = LocalizedList{
		UK: slices.Clone(record.Tags.UK),
		EN: slices.Clone(record.Tags.EN),
		DE: slices.Clone(record.Tags.DE),
	}

	if record.Price != nil {
		price := *record.Price
		price.Amount = pointer.Clone(record.Price.Amount)
		clone.Price = &price
	}

	clone.Available = pointer.Clone(record.Available)
	clone.Year = pointer.Clone(record.Year)
	clone.Priority = pointer.Clone(record.Priority)
	clone.Dimensions = Dimensions{
		Width:  pointer.Clone(record.Dimensions.Width),
		Height: pointer.Clone(record.Dimensions.Height),
		Depth:  pointer.Clone(record.Dimensions.Depth),
	}

	return clone
}

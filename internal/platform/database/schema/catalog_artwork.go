// Copyright (c) 2026 Inner Garden. All rights reserved.

package schema

// CatalogArtworkTable represents the 'catalog.artwork' table
type CatalogArtworkTable struct {
	Table         string
	ID            string
	Slug          string
	Title         string
	Excerpt       string
	Description   string
	Materials     string
	Category      string
	Moods         string
	Palette       string
	Spaces        string
	PriceAmount   string
	PriceCurrency string
	Available     string
	Reserved      string
	Sold          string
	Width         string
	Height        string
	Depth         string
	Year          string
	Tags          string
	Priority      string
	ImageURL      string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogArtwork is the schema definition for catalog.artwork
var CatalogArtwork = CatalogArtworkTable{
	Table:         "catalog.artwork",
	ID:            "id",
	Slug:          "slug",
	Title:         "title",
	Excerpt:       "excerpt",
	Description:   "description",
	Materials:     "materials",
	Category:      "category",
	Moods:         "moods",
	Palette:       "palette",
	Spaces:        "spaces",
	PriceAmount:   "priceamount",
	PriceCurrency: "pricecurrency",
	Available:     "available",
	Reserved:      "reserved",
	Sold:          "sold",
	Width:         "width",
	Height:        "height",
	Depth:         "depth",
	Year:          "year",
	Tags:          "tags",
	Priority:      "priority",
	ImageURL:      "imageurl",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns lists every column in scan order.
func (t CatalogArtworkTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Excerpt, t.Description, t.Materials,
		t.Category, t.Moods, t.Palette, t.Spaces,
		t.PriceAmount, t.PriceCurrency, t.Available, t.Reserved, t.Sold,
		t.Width, t.Height, t.Depth, t.Year, t.Tags, t.Priority, t.ImageURL,
		t.CreatedAt, t.UpdatedAt,
	}
}

// WritableColumns lists the columns supplied on insert, in argument order.
func (t CatalogArtworkTable) WritableColumns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Excerpt, t.Description, t.Materials,
		t.Category, t.Moods, t.Palette, t.Spaces,
		t.PriceAmount, t.PriceCurrency, t.Available, t.Reserved, t.Sold,
		t.Width, t.Height, t.Depth, t.Year, t.Tags, t.Priority, t.ImageURL,
	}
}

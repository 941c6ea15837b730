// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/innergarden/gallery/internal/platform/apperr"
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/internal/platform/validate"
	"github.com/innergarden/gallery/pkg/slug"
	"github.com/innergarden/gallery/pkg/uuid"
)

// Validation bounds for admin input.
const (
	maxTitleLength   = 200
	maxExcerptLength = 600
	maxTextLength    = 10000
	minYear          = 1000
	maxYear          = 2100
	maxPriority      = 100
)

// Service owns artwork mutations.
//
// Every write goes to the [Repository] first and is then normalised into the
// [Catalog], so the next search sees it.
type Service struct {
	repo    Repository
	catalog Catalog
	logger  *slog.Logger
}

func NewService(repo Repository, catalog Catalog, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// # Catalogue Lifecycle

/*
LoadCatalog rebuilds the in-memory catalogue from the repository.

Description: Called once at start-up. Records are normalised one by one;
the catalogue swaps in the full snapshot at the end.

Returns:
  - int: number of artworks loaded
  - error: repository failure
*/
func (service *Service) LoadCatalog(context context.Context) (int, error) {
	records, err := service.repo.ListAll(context)
	if err != nil {
		return 0, fmt.Errorf("artwork: load catalogue: %w", err)
	}

	artworks := make([]*Artwork, 0, len(records))
	for _, record := range records {
		artworks = append(artworks, Normalize(record))
	}

	service.catalog.Load(artworks)
	service.logger.Info("catalogue_loaded", slog.Int("artworks", len(artworks)))
	return len(artworks), nil
}

/*
Import upserts a batch of records, then reloads the catalogue.

Description: Every record is validated before anything is written; a single
invalid record rejects the whole batch. The repository writes the batch
atomically, and the catalogue is reloaded whether or not the write succeeded.
*/
func (service *Service) Import(context context.Context, records []Record) (int, error) {
	seen := make(map[string]struct{}, len(records))
	for index := range records {
		prepare(&records[index])
		if err := Validate(records[index]); err != nil {
			return 0, withRecordIndex(err, index)
		}
		if _, dup := seen[records[index].ID]; dup {
			return 0, apperr.Conflict(fmt.Sprintf("Duplicate artwork id %q in import", records[index].ID))
		}
		seen[records[index].ID] = struct{}{}
	}

	if err := service.repo.UpsertAll(context, records); err != nil {
		// The repository may still have changed; keep the catalogue in step with it.
		if _, reloadErr := service.LoadCatalog(context); reloadErr != nil {
			service.logger.Error("catalogue_reload_failed", slog.Any("error", reloadErr))
		}
		return 0, err
	}

	service.logger.Info("catalogue_imported", slog.Int("records", len(records)))

	if _, err := service.LoadCatalog(context); err != nil {
		return 0, err
	}
	return len(records), nil
}

// # Queries

// Get returns a normalised artwork from the catalogue.
func (service *Service) Get(id string) (*Artwork, error) {
	artwork, ok := service.catalog.Get(id)
	if !ok {
		return nil, apperr.NotFound("Artwork")
	}
	return artwork, nil
}

// # Mutations

func (service *Service) Create(context context.Context, record *Record) error {
	prepare(record)
	if record.ID == "" {
		record.ID = uuid.New()
	}

	if err := Validate(*record); err != nil {
		return err
	}

	if err := service.repo.Create(context, record); err != nil {
		return err
	}

	service.catalog.Upsert(Normalize(*record))
	service.logger.Info("artwork_created", slog.String("artwork_id", record.ID), slog.String("slug", record.Slug))
	return nil
}

func (service *Service) Update(context context.Context, id string, record *Record) error {
	record.ID = id
	prepare(record)

	if err := Validate(*record); err != nil {
		return err
	}

	if err := service.repo.Update(context, record); err != nil {
		return err
	}

	service.catalog.Upsert(Normalize(*record))
	service.logger.Info("artwork_updated", slog.String("artwork_id", record.ID))
	return nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.catalog.Remove(id)
	service.logger.Warn("artwork_deleted", slog.String("artwork_id", id))
	return nil
}

// # Validation

// prepare trims identifiers and derives a slug from the English, then the
// Ukrainian, title when none was given.
func prepare(record *Record) {
	record.ID = strings.TrimSpace(record.ID)
	record.Slug = strings.TrimSpace(record.Slug)

	if record.Slug == "" {
		for _, lang := range []i18n.Language{i18n.English, i18n.Ukrainian, i18n.German} {
			if title := record.Title.In(lang); title != "" {
				record.Slug = slug.From(title)
				break
			}
		}
	}
	if record.Slug == "" && record.ID != "" {
		record.Slug = slug.From(record.ID)
	}
	if record.Price != nil {
		record.Price.Currency = strings.ToUpper(strings.TrimSpace(record.Price.Currency))
	}
}

/*
Validate checks a raw record against the closed vocabularies and numeric bounds.

Returns:
  - error: a VALIDATION_ERROR [apperr.AppError] listing every failed field, or nil
*/
func Validate(record Record) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldID, record.ID).
		Identifier(FieldID, record.ID).
		Slug(FieldSlug, record.Slug).
		Custom(FieldTitle, record.Title.IsZero(), "A title in at least one language is required").
		Custom(FieldCategory, !record.Category.IsValid(), "Unknown category").
		Custom(FieldPalette, !record.Palette.IsValid(), "Unknown palette").
		URL(FieldImageURL, record.ImageURL)

	for _, lang := range i18n.All {
		validator.MaxLen(FieldTitle+"."+lang.String(), record.Title.In(lang), maxTitleLength)
		validator.MaxLen(FieldExcerpt+"."+lang.String(), record.Excerpt.In(lang), maxExcerptLength)
		validator.MaxLen(FieldDescription+"."+lang.String(), record.Description.In(lang), maxTextLength)
	}

	for _, mood := range record.Moods {
		validator.Custom(FieldMoods, !mood.IsValid(), fmt.Sprintf("Unknown mood %q", mood))
	}
	for _, space := range record.Spaces {
		validator.Custom(FieldSpaces, !space.IsValid(), fmt.Sprintf("Unknown space %q", space))
	}

	if record.Price != nil {
		validator.NonNegative(FieldPrice, record.Price.Amount)
		if record.Price.Currency != "" {
			validator.OneOf(FieldCurrency, record.Price.Currency, Currencies...)
		}
	}

	validator.
		NonNegative(FieldDimensions+".width", record.Dimensions.Width).
		NonNegative(FieldDimensions+".height", record.Dimensions.Height).
		NonNegative(FieldDimensions+".depth", record.Dimensions.Depth)

	if record.Year != nil {
		validator.Range(FieldYear, *record.Year, minYear, maxYear)
	}
	if record.Priority != nil {
		validator.Range(FieldPriority, *record.Priority, 0, maxPriority)
	}

	return validator.Err()
}

// withRecordIndex prefixes validation field names with the batch position.
func withRecordIndex(err error, index int) error {
	appErr := apperr.As(err)
	if appErr == nil {
		return err
	}

	details := make([]apperr.FieldError, len(appErr.Details))
	for i, detail := range appErr.Details {
		details[i] = apperr.FieldError{
			Field:   fmt.Sprintf("[%d].%s", index, detail.Field),
			Message: detail.Message,
		}
	}
	return apperr.ValidationError(appErr.Message, details...)
}

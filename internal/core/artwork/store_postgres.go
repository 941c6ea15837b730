// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/innergarden/gallery/internal/platform/apperr"
	"github.com/innergarden/gallery/internal/platform/database/schema"
	"github.com/innergarden/gallery/internal/platform/dberr"
	"github.com/innergarden/gallery/pkg/slice"
)

// PostgresRepository persists artworks in catalog.artwork.
//
// Localised fields and tags are stored as JSONB, moods and spaces as TEXT[].
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var artworkColumns = strings.Join(schema.CatalogArtwork.Columns(), ", ")

func (repository *PostgresRepository) ListAll(context context.Context) ([]Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		artworkColumns, schema.CatalogArtwork.Table, schema.CatalogArtwork.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artworks")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_artwork")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_artworks")
	}

	return records, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		artworkColumns, schema.CatalogArtwork.Table, schema.CatalogArtwork.ID,
	)

	record, err := scanRecord(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, notFoundAs(dberr.Wrap(err, "get_artwork"))
	}
	return &record, nil
}

func (repository *PostgresRepository) Create(context context.Context, record *Record) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s, %s
	`,
		schema.CatalogArtwork.Table,
		strings.Join(schema.CatalogArtwork.WritableColumns(), ", "),
		placeholders(len(schema.CatalogArtwork.WritableColumns())),
		schema.CatalogArtwork.CreatedAt, schema.CatalogArtwork.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, writeArgs(record)...).Scan(&record.CreatedAt, &record.UpdatedAt)
	return dberr.Wrap(err, "create_artwork")
}

func (repository *PostgresRepository) Update(context context.Context, record *Record) error {
	columns := schema.CatalogArtwork.WritableColumns()

	// $1 is the id; every other writable column is assigned positionally.
	assignments := make([]string, 0, len(columns))
	for index, column := range columns[1:] {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, index+2))
	}
	assignments = append(assignments, schema.CatalogArtwork.UpdatedAt+" = NOW()")

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CatalogArtwork.Table,
		strings.Join(assignments, ", "),
		schema.CatalogArtwork.ID,
		schema.CatalogArtwork.CreatedAt, schema.CatalogArtwork.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, writeArgs(record)...).Scan(&record.CreatedAt, &record.UpdatedAt)
	return notFoundAs(dberr.Wrap(err, "update_artwork"))
}

/*
UpsertAll inserts or replaces a batch of records in one transaction.

Description: A failure on any record rolls back the whole batch, so the
table never holds half an import.

Returns:
  - error: the first failing statement, wrapped with its batch index
*/
func (repository *PostgresRepository) UpsertAll(context context.Context, records []Record) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("begin import: %w", err), "upsert_artworks")
	}
	defer func() { _ = transaction.Rollback(context) }()

	query := upsertQuery()
	for index := range records {
		record := &records[index]
		err := transaction.QueryRow(context, query, writeArgs(record)...).Scan(&record.CreatedAt, &record.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, fmt.Sprintf("upsert_artwork[%d]", index))
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(fmt.Errorf("commit import: %w", err), "upsert_artworks")
	}
	return nil
}

func upsertQuery() string {
	columns := schema.CatalogArtwork.WritableColumns()

	updates := make([]string, 0, len(columns))
	for _, column := range columns[1:] {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}
	updates = append(updates, schema.CatalogArtwork.UpdatedAt+" = NOW()")

	return fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		ON CONFLICT (%s) DO UPDATE SET %s
		RETURNING %s, %s
	`,
		schema.CatalogArtwork.Table,
		strings.Join(columns, ", "),
		placeholders(len(columns)),
		schema.CatalogArtwork.ID,
		strings.Join(updates, ", "),
		schema.CatalogArtwork.CreatedAt, schema.CatalogArtwork.UpdatedAt,
	)
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogArtwork.Table, schema.CatalogArtwork.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_artwork")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Artwork")
	}
	return nil
}

// # Row Mapping

func scanRecord(row pgx.Row) (Record, error) {
	var (
		record        Record
		moods, spaces []string
		priceAmount   *float64
		priceCurrency string
	)

	err := row.Scan(
		&record.ID, &record.Slug,
		&record.Title, &record.Excerpt, &record.Description, &record.Materials,
		&record.Category, &moods, &record.Palette, &spaces,
		&priceAmount, &priceCurrency,
		&record.Available, &record.Reserved, &record.Sold,
		&record.Dimensions.Width, &record.Dimensions.Height, &record.Dimensions.Depth,
		&record.Year, &record.Tags, &record.Priority, &record.ImageURL,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return Record{}, err
	}

	record.Moods = slice.Map(moods, func(value string) Mood { return Mood(value) })
	record.Spaces = slice.Map(spaces, func(value string) Space { return Space(value) })

	if priceAmount != nil || priceCurrency != "" {
		record.Price = &Price{Amount: priceAmount, Currency: priceCurrency}
	}

	return record, nil
}

// writeArgs returns the arguments matching [schema.CatalogArtworkTable.WritableColumns].
func writeArgs(record *Record) []any {
	var (
		priceAmount   *float64
		priceCurrency string
	)
	if record.Price != nil {
		priceAmount = record.Price.Amount
		priceCurrency = record.Price.Currency
	}

	moods := slice.Map(record.Moods, func(mood Mood) string { return string(mood) })
	spaces := slice.Map(record.Spaces, func(space Space) string { return string(space) })
	if moods == nil {
		moods = []string{}
	}
	if spaces == nil {
		spaces = []string{}
	}

	return []any{
		record.ID, record.Slug,
		record.Title, record.Excerpt, record.Description, record.Materials,
		string(record.Category), moods, string(record.Palette), spaces,
		priceAmount, priceCurrency,
		record.Available, record.Reserved, record.Sold,
		record.Dimensions.Width, record.Dimensions.Height, record.Dimensions.Depth,
		record.Year, record.Tags, record.Priority, record.ImageURL,
	}
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// notFoundAs names the resource in generic not-found errors.
func notFoundAs(err error) error {
	if apperr.HasCode(err, "NOT_FOUND") {
		return apperr.NotFound("Artwork")
	}
	return err
}

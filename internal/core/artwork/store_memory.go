// Copyright (c) 2026 Inner Garden. All rights reserved.

package artwork

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/innergarden/gallery/internal/platform/apperr"
)

// MemoryRepository keeps records in process memory.
//
// It backs handler tests and local runs without Postgres.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

// NewMemoryRepository returns a repository pre-filled with seed.
func NewMemoryRepository(seed ...Record) *MemoryRepository {
	repository := &MemoryRepository{
		records: make(map[string]Record, len(seed)),
		now:     time.Now,
	}
	for _, record := range seed {
		repository.records[record.ID] = cloneRecord(record)
	}
	return repository
}

func (repository *MemoryRepository) ListAll(_ context.Context) ([]Record, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	records := make([]Record, 0, len(repository.records))
	for _, record := range repository.records {
		records = append(records, cloneRecord(record))
	}
	slices.SortFunc(records, func(a, b Record) int { return cmp.Compare(a.ID, b.ID) })
	return records, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Record, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	record, ok := repository.records[id]
	if !ok {
		return nil, apperr.NotFound("Artwork")
	}
	clone := cloneRecord(record)
	return &clone, nil
}

func (repository *MemoryRepository) Create(_ context.Context, record *Record) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.records[record.ID]; exists {
		return apperr.Conflict("An artwork with this id already exists")
	}
	if err := checkSlug(repository.records, record); err != nil {
		return err
	}

	now := repository.now()
	record.CreatedAt, record.UpdatedAt = now, now
	repository.records[record.ID] = cloneRecord(*record)
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, record *Record) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.records[record.ID]
	if !ok {
		return apperr.NotFound("Artwork")
	}
	if err := checkSlug(repository.records, record); err != nil {
		return err
	}

	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = repository.now()
	repository.records[record.ID] = cloneRecord(*record)
	return nil
}

// UpsertAll stages the batch on a copy and swaps it in only when every record fits.
func (repository *MemoryRepository) UpsertAll(_ context.Context, records []Record) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	staged := maps.Clone(repository.records)
	now := repository.now()
	for index := range records {
		record := &records[index]
		if err := checkSlug(staged, record); err != nil {
			return err
		}

		record.CreatedAt = now
		if existing, ok := staged[record.ID]; ok {
			record.CreatedAt = existing.CreatedAt
		}
		record.UpdatedAt = now
		staged[record.ID] = cloneRecord(*record)
	}

	repository.records = staged
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.records[id]; !ok {
		return apperr.NotFound("Artwork")
	}
	delete(repository.records, id)
	return nil
}

// checkSlug mirrors the unique index on slug. Callers hold the write lock.
func checkSlug(records map[string]Record, record *Record) error {
	for id, other := range records {
		if id != record.ID && other.Slug == record.Slug {
			return apperr.Conflict("An artwork with this slug already exists")
		}
	}
	return nil
}

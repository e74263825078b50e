package store

import (
	"context"
	"fmt"

	"asset-exchange/feature/assets/models"
)

// RecordStore is the persistence collaborator the import pipeline writes
// validated records into and reads the duplicate-check snapshot from.
type RecordStore interface {
	// Create persists a new record and assigns its ID on success. Failures
	// carry field-level detail when available (FieldError, ConflictError).
	Create(ctx context.Context, a *models.Asset) error

	// List returns a page of existing records in stable order. A page
	// shorter than limit marks the end of the set.
	List(ctx context.Context, offset, limit int) ([]*models.Asset, error)
}

// listPageSize is the page size used when draining a store.
const listPageSize = 500

// ListAll pages through the store and returns every record.
func ListAll(ctx context.Context, s RecordStore) ([]*models.Asset, error) {
	var all []*models.Asset
	for offset := 0; ; offset += listPageSize {
		page, err := s.List(ctx, offset, listPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list records at offset %d: %w", offset, err)
		}
		all = append(all, page...)
		if len(page) < listPageSize {
			return all, nil
		}
	}
}

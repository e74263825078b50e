package store

import (
	"context"
	"sync"

	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/schema"

	"github.com/google/uuid"
)

// Memory is an in-memory RecordStore. It backs tests and local runs
// without a database, and enforces the same hostname/name uniqueness a
// production backend would, so store-failure paths stay exercisable.
type Memory struct {
	mu      sync.Mutex
	records []*models.Asset
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Create stores a copy of the record, assigning an ID when it has none.
// A non-empty hostname or name colliding with a stored record returns a
// ConflictError.
func (m *Memory) Create(ctx context.Context, a *models.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.records {
		if a.Hostname != "" && rec.Hostname == a.Hostname {
			return &ConflictError{Field: schema.FieldHostname, Value: a.Hostname}
		}
		if a.Name != "" && rec.Name == a.Name {
			return &ConflictError{Field: schema.FieldName, Value: a.Name}
		}
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	cp := *a
	m.records = append(m.records, &cp)
	return nil
}

// List returns a page of records in insertion order.
func (m *Memory) List(ctx context.Context, offset, limit int) ([]*models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if offset < 0 || offset >= len(m.records) {
		return nil, nil
	}
	end := len(m.records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]*models.Asset, 0, end-offset)
	for _, rec := range m.records[offset:end] {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

// Len reports the number of stored records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

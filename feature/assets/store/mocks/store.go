package mocks

import (
	"context"

	"asset-exchange/feature/assets/models"

	"github.com/stretchr/testify/mock"
)

// RecordStore is a mock implementation of store.RecordStore
type RecordStore struct {
	mock.Mock
}

func (m *RecordStore) Create(ctx context.Context, a *models.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *RecordStore) List(ctx context.Context, offset, limit int) ([]*models.Asset, error) {
	args := m.Called(ctx, offset, limit)
	if records, ok := args.Get(0).([]*models.Asset); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

package repository

import (
	"context"
	"testing"

	"weightwise/internal/domain/entity"
	repo "weightwise/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWeightRepository is a testify mock for repo.WeightRepository.
type MockWeightRepository struct {
	mock.Mock
}

var _ repo.WeightRepository = (*MockWeightRepository)(nil)

func NewMockWeightRepository(t *testing.T) *MockWeightRepository {
	m := &MockWeightRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWeightRepository) Create(ctx context.Context, entry *entity.WeightEntry) error {
	args := m.Called(ctx, entry)

	return args.Error(0)
}

func (m *MockWeightRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.WeightEntry, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.WeightEntry), args.Error(1)
}

func (m *MockWeightRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.WeightEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.WeightEntry), args.Error(1)
}

func (m *MockWeightRepository) DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID string) error {
	args := m.Called(ctx, id, userID)

	return args.Error(0)
}

package repository

import (
	"context"
	"testing"

	"weightwise/internal/domain/entity"
	repo "weightwise/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBusinessRepository is a testify mock for repo.BusinessRepository.
type MockBusinessRepository struct {
	mock.Mock
}

var _ repo.BusinessRepository = (*MockBusinessRepository)(nil)

func NewMockBusinessRepository(t *testing.T) *MockBusinessRepository {
	m := &MockBusinessRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *entity.BusinessProfile) error {
	args := m.Called(ctx, business)

	return args.Error(0)
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.BusinessProfile), args.Error(1)
}

func (m *MockBusinessRepository) Search(ctx context.Context, filter repo.BusinessSearch) ([]*entity.BusinessProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.BusinessProfile), args.Error(1)
}

func (m *MockBusinessRepository) UpdateByIDAndOwner(ctx context.Context, business *entity.BusinessProfile) error {
	args := m.Called(ctx, business)

	return args.Error(0)
}

func (m *MockBusinessRepository) ListAll(ctx context.Context) ([]*entity.BusinessProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.BusinessProfile), args.Error(1)
}

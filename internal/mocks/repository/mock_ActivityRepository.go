package repository

import (
	"context"
	"testing"

	"weightwise/internal/domain/entity"
	repo "weightwise/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockActivityRepository is a testify mock for repo.ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

var _ repo.ActivityRepository = (*MockActivityRepository)(nil)

func NewMockActivityRepository(t *testing.T) *MockActivityRepository {
	m := &MockActivityRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockActivityRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	args := m.Called(ctx, log)

	return args.Error(0)
}

func (m *MockActivityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ActivityLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ActivityLog), args.Error(1)
}

package repository

import (
	"context"
	"testing"

	"weightwise/internal/domain/entity"
	repo "weightwise/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a testify mock for repo.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

var _ repo.ReviewRepository = (*MockReviewRepository)(nil)

func NewMockReviewRepository(t *testing.T) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.BusinessReview) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.BusinessReview, error) {
	args := m.Called(ctx, businessID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.BusinessReview), args.Error(1)
}

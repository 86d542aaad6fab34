package repository

import (
	"context"
	"testing"

	"weightwise/internal/domain/entity"
	repo "weightwise/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecommendationRepository is a testify mock for repo.RecommendationRepository.
type MockRecommendationRepository struct {
	mock.Mock
}

var _ repo.RecommendationRepository = (*MockRecommendationRepository)(nil)

func NewMockRecommendationRepository(t *testing.T) *MockRecommendationRepository {
	m := &MockRecommendationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRecommendationRepository) Create(ctx context.Context, rec *entity.Recommendation) error {
	args := m.Called(ctx, rec)

	return args.Error(0)
}

func (m *MockRecommendationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Recommendation, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) MarkViewed(ctx context.Context, id uuid.UUID, userID string) error {
	args := m.Called(ctx, id, userID)

	return args.Error(0)
}

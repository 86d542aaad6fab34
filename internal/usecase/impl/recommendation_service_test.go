package impl

import (
	"context"
	"testing"

	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	mockRepo "weightwise/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationService_ListRecommendations(t *testing.T) {
	recommendationRepo := mockRepo.NewMockRecommendationRepository(t)
	recommendationService := NewRecommendationService(recommendationRepo, testLogger())
	ctx := context.Background()

	recommendationRepo.On("ListByUser", ctx, "user-1", 10).
		Return([]*entity.Recommendation{
			{ID: uuid.New(), UserID: "user-1", Score: 0.92, Business: &entity.BusinessProfile{Name: "Noodle Bar"}},
		}, nil)

	recs, err := recommendationService.ListRecommendations(ctx, "user-1", 10)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Noodle Bar", recs[0].Business.Name)
}

func TestRecommendationService_MarkViewed_Success(t *testing.T) {
	recommendationRepo := mockRepo.NewMockRecommendationRepository(t)
	recommendationService := NewRecommendationService(recommendationRepo, testLogger())
	ctx := context.Background()
	id := uuid.New()

	recommendationRepo.On("MarkViewed", ctx, id, "user-1").Return(nil)

	require.NoError(t, recommendationService.MarkViewed(ctx, "user-1", id))
}

func TestRecommendationService_MarkViewed_NotOwned(t *testing.T) {
	recommendationRepo := mockRepo.NewMockRecommendationRepository(t)
	recommendationService := NewRecommendationService(recommendationRepo, testLogger())
	ctx := context.Background()
	id := uuid.New()

	recommendationRepo.On("MarkViewed", ctx, id, "intruder").
		Return(repository.ErrRecommendationNotFound)

	err := recommendationService.MarkViewed(ctx, "intruder", id)

	require.ErrorIs(t, err, domainerrors.ErrRecommendationNotFound)
}

func TestRecommendationService_MarkViewed_RepositoryFailure(t *testing.T) {
	recommendationRepo := mockRepo.NewMockRecommendationRepository(t)
	recommendationService := NewRecommendationService(recommendationRepo, testLogger())
	ctx := context.Background()
	id := uuid.New()

	recommendationRepo.On("MarkViewed", ctx, id, "user-1").
		Return(errors.New("connection reset"))

	err := recommendationService.MarkViewed(ctx, "user-1", id)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrRecommendationNotFound)
}

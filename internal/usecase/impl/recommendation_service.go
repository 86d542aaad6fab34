package impl

import (
	"context"
	"log/slog"

	deliverycontext "weightwise/internal/delivery/context"
	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	recommendationRepo repository.RecommendationRepository
	logger             *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(recommendationRepo repository.RecommendationRepository, logger *slog.Logger) usecase.RecommendationUsecase {
	return &recommendationService{
		recommendationRepo: recommendationRepo,
		logger:             logger,
	}
}

// ListRecommendations returns the caller's recommendations joined to their
// target business, best score first.
func (srv *recommendationService) ListRecommendations(ctx context.Context, userID string, limit int) ([]*entity.Recommendation, error) {
	recs, err := srv.recommendationRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	return recs, nil
}

// MarkViewed flags one recommendation owned by the caller. Re-marking is a
// successful no-op; a foreign or missing row is a not-found.
func (srv *recommendationService) MarkViewed(ctx context.Context, userID string, id uuid.UUID) error {
	if err := srv.recommendationRepo.MarkViewed(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return domainerrors.ErrRecommendationNotFound
		}

		return errors.Wrap(err, "failed to mark recommendation viewed")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Recommendation marked viewed",
		slog.String("userID", userID), slog.String("recommendationID", id.String()))

	return nil
}

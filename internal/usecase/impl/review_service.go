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
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo   repository.ReviewRepository
	businessRepo repository.BusinessRepository
	recorder     *activityRecorder
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo   repository.ReviewRepository
	BusinessRepo repository.BusinessRepository
	Recorder     *activityRecorder
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:   params.ReviewRepo,
		businessRepo: params.BusinessRepo,
		recorder:     params.Recorder,
		logger:       params.Logger,
	}
}

// CreateReview records the caller's rating of a business plus one audit row.
func (srv *reviewService) CreateReview(ctx context.Context, userID string, businessID uuid.UUID, input usecase.CreateReviewInput) (*entity.BusinessReview, error) {
	if _, err := srv.businessRepo.FindByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	review := &entity.BusinessReview{
		BusinessID: businessID,
		UserID:     userID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	err := srv.recorder.record(ctx, userID, entity.ActionReviewCreate, "Reviewed a business", map[string]any{
		"business_id": businessID.String(),
		"review_id":   review.ID.String(),
		"rating":      input.Rating,
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Review created",
		slog.String("userID", userID), slog.String("businessID", businessID.String()))

	return review, nil
}

// ListReviews returns a business's reviews newest-first.
func (srv *reviewService) ListReviews(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.BusinessReview, error) {
	reviews, err := srv.reviewRepo.ListByBusiness(ctx, businessID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

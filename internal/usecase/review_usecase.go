package usecase

import (
	"context"

	"weightwise/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a business.
type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=5000"`
}

// ReviewUsecase defines business review operations.
type ReviewUsecase interface {
	// CreateReview records the caller's rating of a business plus one audit
	// row. Reviewing an unknown business is a not-found.
	CreateReview(ctx context.Context, userID string, businessID uuid.UUID, input CreateReviewInput) (*entity.BusinessReview, error)

	// ListReviews returns a business's reviews newest-first.
	ListReviews(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.BusinessReview, error)
}

package repository

import (
	"context"

	"weightwise/internal/domain/entity"
	"weightwise/internal/errors"

	"github.com/google/uuid"
)

// ErrRecommendationNotFound is returned when no recommendation matches the id
// within the owner's scope.
var ErrRecommendationNotFound = errors.New("recommendation not found")

// RecommendationRepository serves externally scored recommendations.
type RecommendationRepository interface {
	Create(ctx context.Context, rec *entity.Recommendation) error

	// ListByUser returns the user's recommendations joined to their target
	// business, ordered by score descending then creation time descending,
	// capped at limit when limit > 0.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Recommendation, error)

	// MarkViewed sets viewed on the row owned by userID. Marking an
	// already-viewed row succeeds as a no-op; a missing or foreign row
	// yields ErrRecommendationNotFound.
	MarkViewed(ctx context.Context, id uuid.UUID, userID string) error
}

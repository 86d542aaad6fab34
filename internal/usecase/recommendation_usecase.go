package usecase

import (
	"context"

	"weightwise/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationUsecase serves externally scored recommendations. Scoring
// itself happens outside this service; rows arrive pre-populated.
type RecommendationUsecase interface {
	// ListRecommendations returns the caller's recommendations joined to
	// their target business, best score first.
	ListRecommendations(ctx context.Context, userID string, limit int) ([]*entity.Recommendation, error)

	// MarkViewed flags one recommendation owned by the caller. Re-marking is
	// a successful no-op; a foreign or missing row is a not-found.
	MarkViewed(ctx context.Context, userID string, id uuid.UUID) error
}

package usecase

import (
	"context"

	"weightwise/internal/domain/entity"
)

// ActivityUsecase exposes the read side of the audit trail. Rows are written
// by the mutating use cases, never through this interface.
type ActivityUsecase interface {
	// ListActivities returns the caller's audit rows newest-first.
	ListActivities(ctx context.Context, userID string, limit int) ([]*entity.ActivityLog, error)
}

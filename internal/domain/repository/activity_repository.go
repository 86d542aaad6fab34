package repository

import (
	"context"

	"weightwise/internal/domain/entity"
)

// ActivityRepository manages the append-only audit trail. There is no update
// or delete; rows only accumulate.
type ActivityRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error

	// ListByUser returns the user's audit rows newest-first, capped at limit
	// when limit > 0.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ActivityLog, error)
}

package repository

import (
	"context"

	"weightwise/internal/domain/entity"
	"weightwise/internal/errors"

	"github.com/google/uuid"
)

// ErrWeightEntryNotFound is returned when no entry matches the id within the
// owner's scope. A foreign user's entry is indistinguishable from a missing one.
var ErrWeightEntryNotFound = errors.New("weight entry not found")

// WeightRepository manages weight entries. Every read and delete is scoped to
// the owning user id; cross-user access is structurally impossible.
type WeightRepository interface {
	Create(ctx context.Context, entry *entity.WeightEntry) error

	// FindByIDAndUser retrieves one entry owned by userID.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.WeightEntry, error)

	// ListByUser returns the user's entries newest-first, capped at limit
	// when limit > 0.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.WeightEntry, error)

	// DeleteByIDAndUser removes one entry owned by userID. Returns
	// ErrWeightEntryNotFound when the row is absent or owned by someone else.
	DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID string) error
}

package repository

import (
	"context"

	"weightwise/internal/domain/entity"
	"weightwise/internal/errors"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when no business matches the lookup.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessSearch captures the public listing filters.
type BusinessSearch struct {
	// Query is matched as a case-insensitive substring of name and description.
	Query string
	// Category filters exactly when non-empty.
	Category string
	// Limit caps results when > 0.
	Limit int
}

// BusinessRepository manages business profiles and their reviews.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.BusinessProfile) error

	// FindByID retrieves a business regardless of owner; profiles are public.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// Search lists businesses matching the filters, newest-first.
	Search(ctx context.Context, filter BusinessSearch) ([]*entity.BusinessProfile, error)

	// UpdateByIDAndOwner applies the update only when ownerID owns the row.
	// Returns ErrBusinessNotFound otherwise.
	UpdateByIDAndOwner(ctx context.Context, business *entity.BusinessProfile) error

	// ListAll returns every profile; used by the nearby search which filters
	// by distance in memory.
	ListAll(ctx context.Context) ([]*entity.BusinessProfile, error)
}

// ReviewRepository manages business reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.BusinessReview) error

	// ListByBusiness returns a business's reviews newest-first, capped at
	// limit when limit > 0.
	ListByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.BusinessReview, error)
}

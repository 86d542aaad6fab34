// Package repository defines the persistence contracts the use cases depend
// on, keeping the domain free of GORM and PostgreSQL details.
package repository

import (
	"context"

	"weightwise/internal/domain/entity"
	"weightwise/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository manages identity records keyed by the provider subject.
type UserRepository interface {
	// Upsert inserts the user or refreshes email/name/avatar on conflict.
	// Called on every successful login.
	Upsert(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by provider subject id.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

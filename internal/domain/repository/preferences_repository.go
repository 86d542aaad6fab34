package repository

import (
	"context"

	"weightwise/internal/domain/entity"
	"weightwise/internal/errors"
)

// ErrPreferencesNotFound is returned when the user has not set preferences yet.
var ErrPreferencesNotFound = errors.New("preferences not found")

// PreferencesRepository manages the single per-user preferences row.
type PreferencesRepository interface {
	// Upsert inserts or replaces the user's preferences wholesale.
	Upsert(ctx context.Context, prefs *entity.CustomerPreferences) error

	// FindByUser retrieves the user's preferences.
	FindByUser(ctx context.Context, userID string) (*entity.CustomerPreferences, error)
}

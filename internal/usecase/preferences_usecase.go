package usecase

import (
	"context"

	"weightwise/internal/domain/entity"
)

// UpdatePreferencesInput replaces the caller's preference row wholesale.
type UpdatePreferencesInput struct {
	Categories          []string `json:"categories" validate:"omitempty,dive,max=100"`
	DietaryRestrictions []string `json:"dietaryRestrictions" validate:"omitempty,dive,max=100"`
	Interests           []string `json:"interests" validate:"omitempty,dive,max=100"`
	BudgetMin           int      `json:"budgetMin" validate:"omitempty,min=0"`
	BudgetMax           int      `json:"budgetMax" validate:"omitempty,min=0,gtefield=BudgetMin"`
	DistanceRadiusKm    float64  `json:"distanceRadiusKm" validate:"omitempty,min=0"`
}

// PreferencesUsecase manages the caller's recommendation preferences.
type PreferencesUsecase interface {
	// GetPreferences returns the caller's preferences, not-found until set.
	GetPreferences(ctx context.Context, userID string) (*entity.CustomerPreferences, error)

	// UpdatePreferences upserts the row and writes one audit row.
	UpdatePreferences(ctx context.Context, userID string, input UpdatePreferencesInput) (*entity.CustomerPreferences, error)
}

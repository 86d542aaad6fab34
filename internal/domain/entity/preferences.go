package entity

import "time"

// CustomerPreferences captures what a user wants recommended to them.
// One row per user, replaced wholesale on update.
type CustomerPreferences struct {
	UserID              string    `json:"userId"`
	Categories          []string  `json:"categories"`
	DietaryRestrictions []string  `json:"dietaryRestrictions"`
	Interests           []string  `json:"interests"`
	BudgetMin           int       `json:"budgetMin"`
	BudgetMax           int       `json:"budgetMax"`
	DistanceRadiusKm    float64   `json:"distanceRadiusKm"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

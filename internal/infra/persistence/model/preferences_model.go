package model

import (
	"time"

	"gorm.io/datatypes"
)

// CustomerPreferencesModel mirrors the 'customer_preferences' table.
// The array fields are JSONB columns; they are always replaced wholesale.
type CustomerPreferencesModel struct {
	UserID              string                       `gorm:"type:varchar(255);primaryKey"`
	Categories          datatypes.JSONSlice[string]  `gorm:"type:jsonb"`
	DietaryRestrictions datatypes.JSONSlice[string]  `gorm:"type:jsonb"`
	Interests           datatypes.JSONSlice[string]  `gorm:"type:jsonb"`
	BudgetMin           int
	BudgetMax           int
	DistanceRadiusKm    float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerPreferencesModel) TableName() string {
	return "customer_preferences"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntryType distinguishes a manually typed weight reading from one produced
// by the photo detector.
type EntryType string

const (
	EntryTypeManual EntryType = "manual"
	EntryTypePhoto  EntryType = "photo"
)

// WeightEntry is a single weight reading belonging to a user.
// Weight is kept as a decimal string so values like "150.5" round-trip
// through the API exactly as entered.
type WeightEntry struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"userId"`
	Weight     string    `json:"weight"`
	Unit       string    `json:"unit"`
	EntryType  EntryType `json:"entryType"`
	PhotoPath  string    `json:"photoPath,omitempty"` // Path under /uploads when EntryType is photo.
	Notes      string    `json:"notes,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation links a user to a suggested business. Scores are supplied
// by an external process; this service only stores and serves them.
type Recommendation struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"userId"`
	BusinessID uuid.UUID `json:"businessId"`
	RecType    string    `json:"recType"` // Type tag, e.g. "personalized", "trending".
	Score      float64   `json:"score"`
	Reason     string    `json:"reason,omitempty"` // Human-readable explanation shown to the user.
	Viewed     bool      `json:"viewed"`
	CreatedAt  time.Time `json:"createdAt"`

	// Business is the joined target profile, populated on listing.
	Business *BusinessProfile `json:"business,omitempty"`
}

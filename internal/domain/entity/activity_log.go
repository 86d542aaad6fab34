package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity action tags. One row is written per mutating action.
const (
	ActionWeightEntry       = "weight_entry"
	ActionWeightDelete      = "weight_delete"
	ActionPhotoUpload       = "photo_upload"
	ActionBusinessCreate    = "business_create"
	ActionBusinessUpdate    = "business_update"
	ActionReviewCreate      = "review_create"
	ActionPreferencesUpdate = "preferences_update"
)

// ActivityLog is an append-only audit row describing one mutating action
// performed by a user. Metadata carries an arbitrary action-specific blob.
type ActivityLog struct {
	ID          uuid.UUID      `json:"id"`
	UserID      string         `json:"userId"`
	Action      string         `json:"action"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile is a local business owned by a user.
type BusinessProfile struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     string    `json:"ownerId"` // User who created and may edit this profile.
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"` // Free-text address shown to customers.
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Website     string    `json:"website,omitempty"`
	IsOpen      bool      `json:"isOpen"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BusinessReview is a customer's rating of a business.
type BusinessReview struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"businessId"`
	UserID     string    `json:"userId"` // The reviewing user.
	Rating     int       `json:"rating"` // 1..5
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

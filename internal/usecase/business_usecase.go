package usecase

import (
	"context"

	"weightwise/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BusinessInput defines the data for creating or updating a business profile.
type BusinessInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Category    string  `json:"category" validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=5000"`
	Location    string  `json:"location" validate:"omitempty,max=1000"`
	Latitude    float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   float64 `json:"longitude" validate:"omitempty,longitude"`
	Phone       string  `json:"phone" validate:"omitempty,max=50"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Website     string  `json:"website" validate:"omitempty,url"`
	IsOpen      *bool   `json:"isOpen"`
}

// SearchBusinessInput captures the public listing filters.
type SearchBusinessInput struct {
	Query    string
	Category string
	Limit    int
}

// NearbyBusinessInput captures a geo query around a point.
type NearbyBusinessInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

// --- Output DTOs ---

// NearbyBusiness pairs a profile with its distance from the query point.
type NearbyBusiness struct {
	Business   *entity.BusinessProfile `json:"business"`
	DistanceKm float64                 `json:"distanceKm"`
}

// BusinessUsecase defines business profile operations. Reads are public;
// writes are scoped to the owning user.
type BusinessUsecase interface {
	// CreateBusiness creates a profile owned by the caller plus an audit row.
	CreateBusiness(ctx context.Context, ownerID string, input BusinessInput) (*entity.BusinessProfile, error)

	// GetBusiness retrieves any profile by id.
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// SearchBusinesses lists profiles matching the filters.
	SearchBusinesses(ctx context.Context, input SearchBusinessInput) ([]*entity.BusinessProfile, error)

	// UpdateBusiness applies the update when the caller owns the profile,
	// writing one audit row. Non-owners get a not-found.
	UpdateBusiness(ctx context.Context, ownerID string, id uuid.UUID, input BusinessInput) (*entity.BusinessProfile, error)

	// NearbyBusinesses lists profiles within radius of the point, closest
	// first.
	NearbyBusinesses(ctx context.Context, input NearbyBusinessInput) ([]*NearbyBusiness, error)

	// BusinessQRCode renders a PNG QR code linking to the business page.
	BusinessQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

package usecase

import (
	"context"
	"io"

	"weightwise/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateWeightInput defines the data required to record a weight manually.
type CreateWeightInput struct {
	Weight     string `json:"weight" validate:"required,numeric"`
	Unit       string `json:"unit" validate:"omitempty,oneof=lbs kg"`
	EntryType  string `json:"entryType" validate:"omitempty,oneof=manual photo"`
	Notes      string `json:"notes" validate:"omitempty,max=1000"`
	RecordedAt string `json:"recordedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// PhotoUploadInput carries one multipart photo through the upload pipeline.
type PhotoUploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Photo       io.Reader

	Unit  string
	Notes string
}

// WeightUsecase defines the weight-tracking operations. Every operation is
// scoped to the calling user; entries of other users are invisible.
type WeightUsecase interface {
	// ListEntries returns the user's entries newest-first.
	ListEntries(ctx context.Context, userID string, limit int) ([]*entity.WeightEntry, error)

	// CreateEntry records a manual weight reading and one audit row.
	CreateEntry(ctx context.Context, userID string, input CreateWeightInput) (*entity.WeightEntry, error)

	// GetEntry retrieves one entry owned by the user.
	GetEntry(ctx context.Context, userID string, id uuid.UUID) (*entity.WeightEntry, error)

	// DeleteEntry removes one entry owned by the user and writes one audit
	// row. A foreign or missing entry is a not-found with no side effects.
	DeleteEntry(ctx context.Context, userID string, id uuid.UUID) error

	// CreateEntryFromPhoto stores the photo, runs the detector and records
	// the detected weight as a photo entry plus one audit row.
	CreateEntryFromPhoto(ctx context.Context, userID string, input PhotoUploadInput) (*entity.WeightEntry, error)
}

package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"regexp"
	"time"

	"weightwise/config"
	deliverycontext "weightwise/internal/delivery/context"
	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/domain/service"
	"weightwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultWeightUnit = "lbs"

// The weight column is DECIMAL(6,2), so anything past two decimal places
// would be rounded by the database and the create response would no longer
// echo what got stored. Reject those up front.
var weightPattern = regexp.MustCompile(`^\d{1,4}(\.\d{1,2})?$`)

// weightService implements the WeightUsecase interface.
type weightService struct {
	weightRepo repository.WeightRepository
	recorder   *activityRecorder
	photoStore service.PhotoStore
	detector   service.WeightDetector
	maxUpload  int64
	logger     *slog.Logger
}

// WeightServiceParams holds dependencies for WeightService, injected by Fx.
type WeightServiceParams struct {
	fx.In

	WeightRepo repository.WeightRepository
	Recorder   *activityRecorder
	PhotoStore service.PhotoStore
	Detector   service.WeightDetector
	Config     *config.Config
	Logger     *slog.Logger
}

// NewWeightService is the constructor for weightService.
func NewWeightService(params WeightServiceParams) usecase.WeightUsecase {
	maxUpload := params.Config.Uploads.MaxSizeBytes
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}

	return &weightService{
		weightRepo: params.WeightRepo,
		recorder:   params.Recorder,
		photoStore: params.PhotoStore,
		detector:   params.Detector,
		maxUpload:  maxUpload,
		logger:     params.Logger,
	}
}

func (srv *weightService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListEntries returns the user's entries newest-first.
func (srv *weightService) ListEntries(ctx context.Context, userID string, limit int) ([]*entity.WeightEntry, error) {
	entries, err := srv.weightRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list weight entries")
	}

	return entries, nil
}

// CreateEntry records a manual weight reading and one audit row.
func (srv *weightService) CreateEntry(ctx context.Context, userID string, input usecase.CreateWeightInput) (*entity.WeightEntry, error) {
	if !weightPattern.MatchString(input.Weight) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("weight must be a decimal with at most two fractional digits")
	}

	entry := &entity.WeightEntry{
		UserID:     userID,
		Weight:     input.Weight,
		Unit:       input.Unit,
		EntryType:  entity.EntryType(input.EntryType),
		Notes:      input.Notes,
		RecordedAt: time.Now(),
	}
	if entry.Unit == "" {
		entry.Unit = defaultWeightUnit
	}
	if entry.EntryType == "" {
		entry.EntryType = entity.EntryTypeManual
	}
	if input.RecordedAt != "" {
		recordedAt, err := time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("recordedAt must be RFC 3339")
		}
		entry.RecordedAt = recordedAt
	}

	if err := srv.weightRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create weight entry")
	}

	err := srv.recorder.record(ctx, userID, entity.ActionWeightEntry, "Recorded a weight entry", map[string]any{
		"entry_id": entry.ID.String(),
		"weight":   entry.Weight,
		"unit":     entry.Unit,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Weight entry created",
		slog.String("userID", userID), slog.String("entryID", entry.ID.String()))

	return entry, nil
}

// GetEntry retrieves one entry owned by the user.
func (srv *weightService) GetEntry(ctx context.Context, userID string, id uuid.UUID) (*entity.WeightEntry, error) {
	entry, err := srv.weightRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWeightEntryNotFound) {
			return nil, domainerrors.ErrWeightEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find weight entry")
	}

	return entry, nil
}

// DeleteEntry removes one entry owned by the user. A foreign or missing
// entry returns not-found before anything is touched.
func (srv *weightService) DeleteEntry(ctx context.Context, userID string, id uuid.UUID) error {
	if err := srv.weightRepo.DeleteByIDAndUser(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrWeightEntryNotFound) {
			return domainerrors.ErrWeightEntryNotFound
		}

		return errors.Wrap(err, "failed to delete weight entry")
	}

	err := srv.recorder.record(ctx, userID, entity.ActionWeightDelete, "Deleted a weight entry", map[string]any{
		"entry_id": id.String(),
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Weight entry deleted",
		slog.String("userID", userID), slog.String("entryID", id.String()))

	return nil
}

// CreateEntryFromPhoto stores the photo, runs the detector and records the
// detected weight as a photo entry plus one audit row.
func (srv *weightService) CreateEntryFromPhoto(ctx context.Context, userID string, input usecase.PhotoUploadInput) (*entity.WeightEntry, error) {
	if input.Photo == nil {
		return nil, domainerrors.ErrUploadMissing
	}
	if input.Size > srv.maxUpload {
		return nil, domainerrors.ErrUploadTooLarge
	}

	// Tee the upload so the detector reads the same bytes the store persists.
	var photoBuf bytes.Buffer
	photoPath, err := srv.photoStore.Save(ctx, input.Filename, input.ContentType, io.TeeReader(input.Photo, &photoBuf))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store photo")
	}

	weight, err := srv.detector.DetectWeight(&photoBuf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect weight")
	}

	entry := &entity.WeightEntry{
		UserID:     userID,
		Weight:     weight,
		Unit:       input.Unit,
		EntryType:  entity.EntryTypePhoto,
		PhotoPath:  photoPath,
		Notes:      input.Notes,
		RecordedAt: time.Now(),
	}
	if entry.Unit == "" {
		entry.Unit = defaultWeightUnit
	}

	if err := srv.weightRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create weight entry")
	}

	err = srv.recorder.record(ctx, userID, entity.ActionPhotoUpload, "Uploaded a scale photo", map[string]any{
		"entry_id":   entry.ID.String(),
		"photo_path": photoPath,
		"weight":     weight,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Photo weight entry created",
		slog.String("userID", userID),
		slog.String("entryID", entry.ID.String()),
		slog.String("weight", weight))

	return entry, nil
}

package postgres

import (
	"context"

	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// weightRepository implements repository.WeightRepository using GORM.
// Every lookup carries the owner's user id in the WHERE clause, so a foreign
// entry behaves exactly like a missing one.
type weightRepository struct {
	db *gorm.DB
}

// NewWeightRepository is the constructor for weightRepository.
func NewWeightRepository(db *gorm.DB) repository.WeightRepository {
	return &weightRepository{db: db}
}

// Create persists a new weight entry.
func (repo *weightRepository) Create(ctx context.Context, entry *entity.WeightEntry) error {
	entryM := fromWeightEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "weight entry references unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required weight entry fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create weight entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindByIDAndUser retrieves one entry scoped to its owner.
func (repo *weightRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.WeightEntry, error) {
	var entryM model.WeightEntryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWeightEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find weight entry")
	}

	return toWeightEntryDomain(&entryM), nil
}

// ListByUser returns the user's entries newest-first.
func (repo *weightRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.WeightEntry, error) {
	var entryModels []*model.WeightEntryModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list weight entries")
	}

	entries := make([]*entity.WeightEntry, 0, len(entryModels))
	for _, m := range entryModels {
		entries = append(entries, toWeightEntryDomain(m))
	}

	return entries, nil
}

// DeleteByIDAndUser removes one entry scoped to its owner. Zero affected rows
// means the entry is absent or belongs to someone else.
func (repo *weightRepository) DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.WeightEntryModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete weight entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWeightEntryNotFound
	}

	return nil
}

// --- Mapper functions ---

func toWeightEntryDomain(data *model.WeightEntryModel) *entity.WeightEntry {
	if data == nil {
		return nil
	}

	entry := &entity.WeightEntry{
		ID:         data.ID,
		UserID:     data.UserID,
		Weight:     data.Weight,
		Unit:       data.Unit,
		EntryType:  entity.EntryType(data.EntryType),
		RecordedAt: data.RecordedAt,
		CreatedAt:  data.CreatedAt,
	}
	if data.PhotoPath != nil {
		entry.PhotoPath = *data.PhotoPath
	}
	if data.Notes != nil {
		entry.Notes = *data.Notes
	}

	return entry
}

func fromWeightEntryDomain(data *entity.WeightEntry) *model.WeightEntryModel {
	if data == nil {
		return nil
	}

	entryM := &model.WeightEntryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Weight:     data.Weight,
		Unit:       data.Unit,
		EntryType:  string(data.EntryType),
		RecordedAt: data.RecordedAt,
	}
	if data.PhotoPath != "" {
		photoPath := data.PhotoPath
		entryM.PhotoPath = &photoPath
	}
	if data.Notes != "" {
		notes := data.Notes
		entryM.Notes = &notes
	}

	return entryM
}

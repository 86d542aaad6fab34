package postgres

import (
	"context"
	"encoding/json"

	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// activityRepository implements repository.ActivityRepository using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create appends one audit row.
func (repo *activityRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	logM, err := fromActivityLogDomain(log)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "activity log references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// ListByUser returns the user's audit rows newest-first.
func (repo *activityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ActivityLog, error) {
	var logModels []*model.ActivityLogModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(logModels))
	for _, m := range logModels {
		log, err := toActivityLogDomain(m)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, nil
}

// --- Mapper functions ---

func toActivityLogDomain(data *model.ActivityLogModel) (*entity.ActivityLog, error) {
	var metadata map[string]any
	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, &metadata); err != nil {
			return nil, errors.Wrap(err, "failed to decode activity metadata")
		}
	}

	return &entity.ActivityLog{
		ID:          data.ID,
		UserID:      data.UserID,
		Action:      data.Action,
		Description: data.Description,
		Metadata:    metadata,
		CreatedAt:   data.CreatedAt,
	}, nil
}

func fromActivityLogDomain(data *entity.ActivityLog) (*model.ActivityLogModel, error) {
	var metadata datatypes.JSON
	if data.Metadata != nil {
		raw, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode activity metadata")
		}
		metadata = datatypes.JSON(raw)
	}

	return &model.ActivityLogModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Action:      data.Action,
		Description: data.Description,
		Metadata:    metadata,
	}, nil
}

package postgres

import (
	"context"
	"encoding/json"
	"time"

	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// sessionRepository implements repository.SessionRepository using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new login session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM, err := fromSessionDomain(session)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "session references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindBySID retrieves a session by its id.
func (repo *sessionRepository) FindBySID(ctx context.Context, sid string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("sid = ?", sid).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return toSessionDomain(&sessionM)
}

// Delete removes a session row. Deleting an absent session is not an error;
// logout is idempotent.
func (repo *sessionRepository) Delete(ctx context.Context, sid string) error {
	if err := repo.db.WithContext(ctx).
		Where("sid = ?", sid).
		Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// DeleteExpired sweeps sessions whose expiry has passed.
func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

// --- Mapper functions ---

func toSessionDomain(data *model.SessionModel) (*entity.Session, error) {
	var blob map[string]any
	if len(data.Data) > 0 {
		if err := json.Unmarshal(data.Data, &blob); err != nil {
			return nil, errors.Wrap(err, "failed to decode session data")
		}
	}

	return &entity.Session{
		SID:       data.SID,
		UserID:    data.UserID,
		Data:      blob,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}, nil
}

func fromSessionDomain(data *entity.Session) (*model.SessionModel, error) {
	var blob datatypes.JSON
	if data.Data != nil {
		raw, err := json.Marshal(data.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode session data")
		}
		blob = datatypes.JSON(raw)
	}

	return &model.SessionModel{
		SID:       data.SID,
		UserID:    data.UserID,
		Data:      blob,
		ExpiresAt: data.ExpiresAt,
	}, nil
}

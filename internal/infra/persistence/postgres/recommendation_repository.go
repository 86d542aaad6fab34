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

// recommendationRepository implements repository.RecommendationRepository using GORM.
type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository is the constructor for recommendationRepository.
func NewRecommendationRepository(db *gorm.DB) repository.RecommendationRepository {
	return &recommendationRepository{db: db}
}

// Create persists a new recommendation row.
func (repo *recommendationRepository) Create(ctx context.Context, rec *entity.Recommendation) error {
	recM := fromRecommendationDomain(rec)

	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recommendation")
	}

	rec.ID = recM.ID
	rec.CreatedAt = recM.CreatedAt

	return nil
}

// ListByUser returns the user's recommendations joined to their target
// business, best score first, newest first within equal scores.
func (repo *recommendationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Recommendation, error) {
	var recModels []*model.RecommendationModel

	query := repo.db.WithContext(ctx).
		Preload("Business").
		Where("user_id = ?", userID).
		Order("score DESC, created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&recModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	recs := make([]*entity.Recommendation, 0, len(recModels))
	for _, m := range recModels {
		recs = append(recs, toRecommendationDomain(m))
	}

	return recs, nil
}

// MarkViewed sets viewed on the row owned by userID. An already-viewed row
// still matches the WHERE clause, so re-marking is a no-op that succeeds.
func (repo *recommendationRepository) MarkViewed(ctx context.Context, id uuid.UUID, userID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecommendationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("viewed", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark recommendation viewed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecommendationNotFound
	}

	return nil
}

// --- Mapper functions ---

func toRecommendationDomain(data *model.RecommendationModel) *entity.Recommendation {
	if data == nil {
		return nil
	}

	return &entity.Recommendation{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		RecType:    data.RecType,
		Score:      data.Score,
		Reason:     data.Reason,
		Viewed:     data.Viewed,
		CreatedAt:  data.CreatedAt,
		Business:   toBusinessDomain(data.Business),
	}
}

func fromRecommendationDomain(data *entity.Recommendation) *model.RecommendationModel {
	if data == nil {
		return nil
	}

	return &model.RecommendationModel{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		RecType:    data.RecType,
		Score:      data.Score,
		Reason:     data.Reason,
		Viewed:     data.Viewed,
	}
}

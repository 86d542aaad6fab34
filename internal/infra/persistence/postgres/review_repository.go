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

// reviewRepository implements repository.ReviewRepository using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.BusinessReview) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// ListByBusiness returns a business's reviews newest-first.
func (repo *reviewRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.BusinessReview, error) {
	var reviewModels []*model.BusinessReviewModel

	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.BusinessReview, 0, len(reviewModels))
	for _, m := range reviewModels {
		reviews = append(reviews, toReviewDomain(m))
	}

	return reviews, nil
}

// --- Mapper functions ---

func toReviewDomain(data *model.BusinessReviewModel) *entity.BusinessReview {
	if data == nil {
		return nil
	}

	return &entity.BusinessReview{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		UserID:     data.UserID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.BusinessReview) *model.BusinessReviewModel {
	if data == nil {
		return nil
	}

	return &model.BusinessReviewModel{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		UserID:     data.UserID,
		Rating:     data.Rating,
		Comment:    data.Comment,
	}
}

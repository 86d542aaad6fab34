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

// businessRepository implements repository.BusinessRepository using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// Create persists a new business profile.
func (repo *businessRepository) Create(ctx context.Context, business *entity.BusinessProfile) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "business references unknown owner")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required business fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a business profile. Profiles are public, so there is no
// owner scope on reads.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	var businessM model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

// Search lists businesses matching the substring and category filters.
func (repo *businessRepository) Search(ctx context.Context, filter repository.BusinessSearch) ([]*entity.BusinessProfile, error) {
	var businessModels []*model.BusinessProfileModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	businesses := make([]*entity.BusinessProfile, 0, len(businessModels))
	for _, m := range businessModels {
		businesses = append(businesses, toBusinessDomain(m))
	}

	return businesses, nil
}

// UpdateByIDAndOwner applies the update only within the owner's scope.
func (repo *businessRepository) UpdateByIDAndOwner(ctx context.Context, business *entity.BusinessProfile) error {
	updates := map[string]any{
		"name":        business.Name,
		"category":    business.Category,
		"description": business.Description,
		"location":    business.Location,
		"latitude":    business.Latitude,
		"longitude":   business.Longitude,
		"phone":       business.Phone,
		"email":       business.Email,
		"website":     business.Website,
		"is_open":     business.IsOpen,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("id = ? AND owner_id = ?", business.ID, business.OwnerID).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// ListAll returns every business profile.
func (repo *businessRepository) ListAll(ctx context.Context) ([]*entity.BusinessProfile, error) {
	var businessModels []*model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.BusinessProfile, 0, len(businessModels))
	for _, m := range businessModels {
		businesses = append(businesses, toBusinessDomain(m))
	}

	return businesses, nil
}

// --- Mapper functions ---

func toBusinessDomain(data *model.BusinessProfileModel) *entity.BusinessProfile {
	if data == nil {
		return nil
	}

	return &entity.BusinessProfile{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Category:    data.Category,
		Description: data.Description,
		Location:    data.Location,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Phone:       data.Phone,
		Email:       data.Email,
		Website:     data.Website,
		IsOpen:      data.IsOpen,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBusinessDomain(data *entity.BusinessProfile) *model.BusinessProfileModel {
	if data == nil {
		return nil
	}

	return &model.BusinessProfileModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Category:    data.Category,
		Description: data.Description,
		Location:    data.Location,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Phone:       data.Phone,
		Email:       data.Email,
		Website:     data.Website,
		IsOpen:      data.IsOpen,
	}
}

package postgres

import (
	"context"

	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferencesRepository implements repository.PreferencesRepository using GORM.
type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository is the constructor for preferencesRepository.
func NewPreferencesRepository(db *gorm.DB) repository.PreferencesRepository {
	return &preferencesRepository{db: db}
}

// Upsert inserts or replaces the user's preferences wholesale.
func (repo *preferencesRepository) Upsert(ctx context.Context, prefs *entity.CustomerPreferences) error {
	prefsM := fromPreferencesDomain(prefs)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"categories",
				"dietary_restrictions",
				"interests",
				"budget_min",
				"budget_max",
				"distance_radius_km",
				"updated_at",
			}),
		}).
		Create(prefsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert preferences")
	}

	prefs.UpdatedAt = prefsM.UpdatedAt

	return nil
}

// FindByUser retrieves the user's preferences.
func (repo *preferencesRepository) FindByUser(ctx context.Context, userID string) (*entity.CustomerPreferences, error) {
	var prefsM model.CustomerPreferencesModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefsM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find preferences")
	}

	return toPreferencesDomain(&prefsM), nil
}

// --- Mapper functions ---

func toPreferencesDomain(data *model.CustomerPreferencesModel) *entity.CustomerPreferences {
	if data == nil {
		return nil
	}

	return &entity.CustomerPreferences{
		UserID:              data.UserID,
		Categories:          data.Categories,
		DietaryRestrictions: data.DietaryRestrictions,
		Interests:           data.Interests,
		BudgetMin:           data.BudgetMin,
		BudgetMax:           data.BudgetMax,
		DistanceRadiusKm:    data.DistanceRadiusKm,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromPreferencesDomain(data *entity.CustomerPreferences) *model.CustomerPreferencesModel {
	if data == nil {
		return nil
	}

	return &model.CustomerPreferencesModel{
		UserID:              data.UserID,
		Categories:          datatypes.NewJSONSlice(data.Categories),
		DietaryRestrictions: datatypes.NewJSONSlice(data.DietaryRestrictions),
		Interests:           datatypes.NewJSONSlice(data.Interests),
		BudgetMin:           data.BudgetMin,
		BudgetMax:           data.BudgetMax,
		DistanceRadiusKm:    data.DistanceRadiusKm,
	}
}

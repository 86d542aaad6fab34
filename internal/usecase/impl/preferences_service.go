package impl

import (
	"context"
	"log/slog"

	deliverycontext "weightwise/internal/delivery/context"
	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// preferencesService implements the PreferencesUsecase interface.
type preferencesService struct {
	preferencesRepo repository.PreferencesRepository
	recorder        *activityRecorder
	logger          *slog.Logger
}

// PreferencesServiceParams holds dependencies for PreferencesService, injected by Fx.
type PreferencesServiceParams struct {
	fx.In

	PreferencesRepo repository.PreferencesRepository
	Recorder        *activityRecorder
	Logger          *slog.Logger
}

// NewPreferencesService is the constructor for preferencesService.
func NewPreferencesService(params PreferencesServiceParams) usecase.PreferencesUsecase {
	return &preferencesService{
		preferencesRepo: params.PreferencesRepo,
		recorder:        params.Recorder,
		logger:          params.Logger,
	}
}

// GetPreferences returns the caller's preferences, not-found until set.
func (srv *preferencesService) GetPreferences(ctx context.Context, userID string) (*entity.CustomerPreferences, error) {
	prefs, err := srv.preferencesRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, domainerrors.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find preferences")
	}

	return prefs, nil
}

// UpdatePreferences upserts the row wholesale and writes one audit row.
func (srv *preferencesService) UpdatePreferences(ctx context.Context, userID string, input usecase.UpdatePreferencesInput) (*entity.CustomerPreferences, error) {
	prefs := &entity.CustomerPreferences{
		UserID:              userID,
		Categories:          input.Categories,
		DietaryRestrictions: input.DietaryRestrictions,
		Interests:           input.Interests,
		BudgetMin:           input.BudgetMin,
		BudgetMax:           input.BudgetMax,
		DistanceRadiusKm:    input.DistanceRadiusKm,
	}

	if err := srv.preferencesRepo.Upsert(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to upsert preferences")
	}

	err := srv.recorder.record(ctx, userID, entity.ActionPreferencesUpdate, "Updated recommendation preferences", map[string]any{
		"categories": prefs.Categories,
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Preferences updated",
		slog.String("userID", userID))

	return prefs, nil
}

package impl

import (
	"context"

	"weightwise/internal/domain/entity"
	"weightwise/internal/domain/repository"
	"weightwise/internal/usecase"

	"github.com/pkg/errors"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService is the constructor for activityService.
func NewActivityService(activityRepo repository.ActivityRepository) usecase.ActivityUsecase {
	return &activityService{activityRepo: activityRepo}
}

// ListActivities returns the caller's audit rows newest-first.
func (srv *activityService) ListActivities(ctx context.Context, userID string, limit int) ([]*entity.ActivityLog, error) {
	logs, err := srv.activityRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return logs, nil
}

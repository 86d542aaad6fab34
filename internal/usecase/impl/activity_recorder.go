// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "weightwise/internal/delivery/context"
	"weightwise/internal/domain/entity"
	"weightwise/internal/domain/repository"
	"weightwise/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityRecorder writes one audit row per mutating action and fans the
// event out to the publisher. The row is mandatory; publishing is
// fire-and-forget and only logged on failure.
type activityRecorder struct {
	activityRepo repository.ActivityRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// ActivityRecorderParams holds dependencies for the recorder, injected by Fx.
type ActivityRecorderParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewActivityRecorder is the constructor for activityRecorder.
func NewActivityRecorder(params ActivityRecorderParams) *activityRecorder {
	return &activityRecorder{
		activityRepo: params.ActivityRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// record persists one audit row and publishes the matching event.
func (r *activityRecorder) record(ctx context.Context, userID, action, description string, metadata map[string]any) error {
	row := &entity.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		Metadata:    metadata,
	}

	if err := r.activityRepo.Create(ctx, row); err != nil {
		return errors.Wrap(err, "failed to create activity log")
	}

	event := &service.ActivityEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		ActivityID:  row.ID.String(),
		UserID:      userID,
		Action:      action,
		Description: description,
		Metadata:    metadata,
	}

	if err := r.publisher.PublishActivityEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Failed to publish activity event",
			slog.String("activity_id", event.ActivityID),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}

	return nil
}

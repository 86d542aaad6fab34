package impl

import (
	"context"
	"testing"

	deliverycontext "weightwise/internal/delivery/context"
	"weightwise/internal/domain/entity"
	"weightwise/internal/domain/service"
	mockRepo "weightwise/internal/mocks/repository"
	mockSvc "weightwise/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRecorder(t *testing.T) (*activityRecorder, *mockRepo.MockActivityRepository, *mockSvc.MockEventPublisher) {
	activityRepo := mockRepo.NewMockActivityRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	recorder := NewActivityRecorder(ActivityRecorderParams{
		ActivityRepo: activityRepo,
		Publisher:    publisher,
		Logger:       testLogger(),
	})

	return recorder, activityRepo, publisher
}

func TestActivityRecorder_Record_PropagatesRequestID(t *testing.T) {
	recorder, activityRepo, publisher := createTestRecorder(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	rowID := uuid.New()
	activityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.ActivityLog).ID = rowID
		}).
		Return(nil)

	var event *service.ActivityEvent
	publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(args mock.Arguments) {
			event = args.Get(1).(*service.ActivityEvent)
		}).
		Return(nil)

	err := recorder.record(ctx, "user-1", entity.ActionWeightEntry, "Recorded a weight entry", map[string]any{
		"entry_id": uuid.NewString(),
	})

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, rowID.String(), event.ActivityID)
	assert.Equal(t, entity.ActionWeightEntry, event.Action)
}

func TestActivityRecorder_Record_RowFailureFailsRequest(t *testing.T) {
	recorder, activityRepo, publisher := createTestRecorder(t)
	ctx := context.Background()

	activityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Return(errors.New("connection reset"))

	err := recorder.record(ctx, "user-1", entity.ActionWeightEntry, "Recorded a weight entry", nil)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "PublishActivityEvent", mock.Anything, mock.Anything)
}

func TestActivityRecorder_Record_PublishFailureTolerated(t *testing.T) {
	recorder, activityRepo, publisher := createTestRecorder(t)
	ctx := context.Background()

	activityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)
	publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).
		Return(errors.New("broker unavailable"))

	require.NoError(t, recorder.record(ctx, "user-1", entity.ActionWeightEntry, "Recorded a weight entry", nil))
}

func TestActivityService_ListActivities(t *testing.T) {
	activityRepo := mockRepo.NewMockActivityRepository(t)
	activityService := NewActivityService(activityRepo)
	ctx := context.Background()

	activityRepo.On("ListByUser", ctx, "user-1", 50).
		Return([]*entity.ActivityLog{
			{ID: uuid.New(), UserID: "user-1", Action: entity.ActionWeightEntry},
		}, nil)

	logs, err := activityService.ListActivities(ctx, "user-1", 50)

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionWeightEntry, logs[0].Action)
}

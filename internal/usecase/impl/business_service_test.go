package impl

import (
	"context"
	"testing"

	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	mockRepo "weightwise/internal/mocks/repository"
	mockSvc "weightwise/internal/mocks/service"
	"weightwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessRepository
	activityRepo *mockRepo.MockActivityRepository
	publisher    *mockSvc.MockEventPublisher
	qrcode       *mockSvc.MockQRCodeService
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	recorder := NewActivityRecorder(ActivityRecorderParams{
		ActivityRepo: activityRepo,
		Publisher:    publisher,
		Logger:       testLogger(),
	})

	businessService := NewBusinessService(BusinessServiceParams{
		BusinessRepo:  businessRepo,
		Recorder:      recorder,
		QRCodeService: qrcode,
		Logger:        testLogger(),
	})

	return businessServiceFixtures{
		service:      businessService,
		businessRepo: businessRepo,
		activityRepo: activityRepo,
		publisher:    publisher,
		qrcode:       qrcode,
	}
}

func TestBusinessService_CreateBusiness_DefaultsToOpen(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.On("Create", ctx, mock.AnythingOfType("*entity.BusinessProfile")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.BusinessProfile).ID = uuid.New()
		}).
		Return(nil)

	var auditRow *entity.ActivityLog
	fx.activityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Run(func(args mock.Arguments) {
			auditRow = args.Get(1).(*entity.ActivityLog)
		}).
		Return(nil)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	business, err := fx.service.CreateBusiness(ctx, "owner-1", usecase.BusinessInput{
		Name:     "Noodle Bar",
		Category: "restaurant",
	})

	require.NoError(t, err)
	assert.Equal(t, "owner-1", business.OwnerID)
	assert.True(t, business.IsOpen)

	require.NotNil(t, auditRow)
	assert.Equal(t, entity.ActionBusinessCreate, auditRow.Action)
	assert.Equal(t, "Noodle Bar", auditRow.Metadata["name"])
}

func TestBusinessService_CreateBusiness_HonorsClosedFlag(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.On("Create", ctx, mock.AnythingOfType("*entity.BusinessProfile")).Return(nil)
	fx.activityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	closed := false
	business, err := fx.service.CreateBusiness(ctx, "owner-1", usecase.BusinessInput{
		Name:     "Noodle Bar",
		Category: "restaurant",
		IsOpen:   &closed,
	})

	require.NoError(t, err)
	assert.False(t, business.IsOpen)
}

func TestBusinessService_UpdateBusiness_NotOwnerLeavesNoAudit(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.businessRepo.On("UpdateByIDAndOwner", ctx, mock.AnythingOfType("*entity.BusinessProfile")).
		Return(repository.ErrBusinessNotFound)

	business, err := fx.service.UpdateBusiness(ctx, "intruder", id, usecase.BusinessInput{
		Name:     "Hijacked",
		Category: "restaurant",
	})

	require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	assert.Nil(t, business)
	fx.activityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBusinessService_UpdateBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.businessRepo.On("UpdateByIDAndOwner", ctx, mock.AnythingOfType("*entity.BusinessProfile")).
		Run(func(args mock.Arguments) {
			business := args.Get(1).(*entity.BusinessProfile)
			assert.Equal(t, id, business.ID)
			assert.Equal(t, "owner-1", business.OwnerID)
		}).
		Return(nil)
	fx.businessRepo.On("FindByID", ctx, id).
		Return(&entity.BusinessProfile{ID: id, OwnerID: "owner-1", Name: "Renamed"}, nil)
	fx.activityRepo.On("Create", ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(nil)
	fx.publisher.On("PublishActivityEvent", ctx, mock.AnythingOfType("*service.ActivityEvent")).Return(nil)

	business, err := fx.service.UpdateBusiness(ctx, "owner-1", id, usecase.BusinessInput{
		Name:     "Renamed",
		Category: "restaurant",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", business.Name)
}

func TestBusinessService_NearbyBusinesses_SortsAndFilters(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	near := &entity.BusinessProfile{ID: uuid.New(), Name: "Near", Latitude: 40.0005, Longitude: -74.0}
	mid := &entity.BusinessProfile{ID: uuid.New(), Name: "Mid", Latitude: 40.05, Longitude: -74.0}
	far := &entity.BusinessProfile{ID: uuid.New(), Name: "Far", Latitude: 41.0, Longitude: -74.0}
	unlocated := &entity.BusinessProfile{ID: uuid.New(), Name: "Unlocated"}

	fx.businessRepo.On("ListAll", ctx).
		Return([]*entity.BusinessProfile{far, unlocated, mid, near}, nil)

	nearby, err := fx.service.NearbyBusinesses(ctx, usecase.NearbyBusinessInput{
		Latitude:  40.0,
		Longitude: -74.0,
		RadiusKm:  10,
	})

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "Near", nearby[0].Business.Name)
	assert.Equal(t, "Mid", nearby[1].Business.Name)
	assert.Less(t, nearby[0].DistanceKm, nearby[1].DistanceKm)
	assert.Less(t, nearby[1].DistanceKm, 10.0)
}

func TestBusinessService_NearbyBusinesses_Limit(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	near := &entity.BusinessProfile{ID: uuid.New(), Name: "Near", Latitude: 40.0005, Longitude: -74.0}
	mid := &entity.BusinessProfile{ID: uuid.New(), Name: "Mid", Latitude: 40.05, Longitude: -74.0}

	fx.businessRepo.On("ListAll", ctx).Return([]*entity.BusinessProfile{mid, near}, nil)

	nearby, err := fx.service.NearbyBusinesses(ctx, usecase.NearbyBusinessInput{
		Latitude:  40.0,
		Longitude: -74.0,
		RadiusKm:  10,
		Limit:     1,
	})

	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "Near", nearby[0].Business.Name)
}

func TestBusinessService_BusinessQRCode(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.businessRepo.On("FindByID", ctx, id).Return(&entity.BusinessProfile{ID: id}, nil)
	fx.qrcode.On("GenerateBusinessQR", id).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.BusinessQRCode(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png)
}

func TestBusinessService_BusinessQRCode_MissingBusiness(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.businessRepo.On("FindByID", ctx, id).Return(nil, repository.ErrBusinessNotFound)

	png, err := fx.service.BusinessQRCode(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	assert.Nil(t, png)
	fx.qrcode.AssertNotCalled(t, "GenerateBusinessQR", mock.Anything)
}

func TestBusinessService_SearchBusinesses(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.On("Search", ctx, repository.BusinessSearch{Query: "noodle", Category: "restaurant", Limit: 5}).
		Return([]*entity.BusinessProfile{{Name: "Noodle Bar"}}, nil)

	businesses, err := fx.service.SearchBusinesses(ctx, usecase.SearchBusinessInput{
		Query:    "noodle",
		Category: "restaurant",
		Limit:    5,
	})

	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.Equal(t, "Noodle Bar", businesses[0].Name)
}

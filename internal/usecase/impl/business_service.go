package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "weightwise/internal/delivery/context"
	"weightwise/internal/domain/entity"
	domainerrors "weightwise/internal/domain/errors"
	"weightwise/internal/domain/repository"
	"weightwise/internal/domain/service"
	"weightwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo  repository.BusinessRepository
	recorder      *activityRecorder
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo  repository.BusinessRepository
	Recorder      *activityRecorder
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo:  params.BusinessRepo,
		recorder:      params.Recorder,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBusiness creates a profile owned by the caller plus an audit row.
func (srv *businessService) CreateBusiness(ctx context.Context, ownerID string, input usecase.BusinessInput) (*entity.BusinessProfile, error) {
	business := businessFromInput(input)
	business.OwnerID = ownerID
	if input.IsOpen == nil {
		business.IsOpen = true
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	err := srv.recorder.record(ctx, ownerID, entity.ActionBusinessCreate, "Created a business profile", map[string]any{
		"business_id": business.ID.String(),
		"name":        business.Name,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Business created",
		slog.String("ownerID", ownerID), slog.String("businessID", business.ID.String()))

	return business, nil
}

// GetBusiness retrieves any profile by id; profiles are public.
func (srv *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

// SearchBusinesses lists profiles matching the filters.
func (srv *businessService) SearchBusinesses(ctx context.Context, input usecase.SearchBusinessInput) ([]*entity.BusinessProfile, error) {
	businesses, err := srv.businessRepo.Search(ctx, repository.BusinessSearch{
		Query:    input.Query,
		Category: input.Category,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	return businesses, nil
}

// UpdateBusiness applies the update when the caller owns the profile. A
// non-owner gets the same not-found as a missing row.
func (srv *businessService) UpdateBusiness(ctx context.Context, ownerID string, id uuid.UUID, input usecase.BusinessInput) (*entity.BusinessProfile, error) {
	business := businessFromInput(input)
	business.ID = id
	business.OwnerID = ownerID
	if input.IsOpen == nil {
		business.IsOpen = true
	}

	if err := srv.businessRepo.UpdateByIDAndOwner(ctx, business); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to update business")
	}

	updated, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload business")
	}

	err = srv.recorder.record(ctx, ownerID, entity.ActionBusinessUpdate, "Updated a business profile", map[string]any{
		"business_id": id.String(),
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Business updated",
		slog.String("ownerID", ownerID), slog.String("businessID", id.String()))

	return updated, nil
}

// NearbyBusinesses lists profiles within radius of the point, closest first.
// The fleet of profiles is small enough to filter in memory.
func (srv *businessService) NearbyBusinesses(ctx context.Context, input usecase.NearbyBusinessInput) ([]*usecase.NearbyBusiness, error) {
	businesses, err := srv.businessRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	origin := orb.Point{input.Longitude, input.Latitude}
	radiusMeters := input.RadiusKm * 1000

	nearby := make([]*usecase.NearbyBusiness, 0)
	for _, b := range businesses {
		if b.Latitude == 0 && b.Longitude == 0 {
			continue
		}

		distance := geo.Distance(origin, orb.Point{b.Longitude, b.Latitude})
		if radiusMeters > 0 && distance > radiusMeters {
			continue
		}

		nearby = append(nearby, &usecase.NearbyBusiness{
			Business:   b,
			DistanceKm: distance / 1000,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if input.Limit > 0 && len(nearby) > input.Limit {
		nearby = nearby[:input.Limit]
	}

	return nearby, nil
}

// BusinessQRCode renders a PNG QR code linking to the business page.
func (srv *businessService) BusinessQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetBusiness(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateBusinessQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate business QR code")
	}

	return png, nil
}

func businessFromInput(input usecase.BusinessInput) *entity.BusinessProfile {
	business := &entity.BusinessProfile{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Location:    input.Location,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Phone:       input.Phone,
		Email:       input.Email,
		Website:     input.Website,
	}
	if input.IsOpen != nil {
		business.IsOpen = *input.IsOpen
	}

	return business
}

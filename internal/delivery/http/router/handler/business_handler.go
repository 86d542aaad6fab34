package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/response"
	"weightwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler holds dependencies for business-profile handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// Create registers a business profile owned by the caller.
func (h *BusinessHandler) Create(c echo.Context) error {
	var input usecase.BusinessInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created")
}

// Get returns any business profile; profiles are public.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// Search lists businesses matching the ?search=, ?category= and ?limit= filters.
func (h *BusinessHandler) Search(c echo.Context) error {
	businesses, err := h.businessUC.SearchBusinesses(c.Request().Context(), usecase.SearchBusinessInput{
		Query:    c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Limit:    queryLimit(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Update applies a full-profile update when the caller owns the business.
func (h *BusinessHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.BusinessInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	business, err := h.businessUC.UpdateBusiness(c.Request().Context(), middleware.UserID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated")
}

// Nearby lists businesses around ?lat=&lng= within ?radius_km=, closest first.
func (h *BusinessHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Query parameter 'lat' must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Query parameter 'lng' must be a number")
	}

	radiusKm := 10.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm < 0 {
			return response.BadRequest(c, "INVALID_RADIUS", "Query parameter 'radius_km' must be a non-negative number")
		}
	}

	nearby, err := h.businessUC.NearbyBusinesses(c.Request().Context(), usecase.NearbyBusinessInput{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radiusKm,
		Limit:     queryLimit(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nearby, "")
}

// QRCode returns a PNG QR code linking to the business page.
func (h *BusinessHandler) QRCode(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.businessUC.BusinessQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

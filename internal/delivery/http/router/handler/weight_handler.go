package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/response"
	"weightwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WeightHandlerParams holds dependencies for WeightHandler, injected by Fx.
type WeightHandlerParams struct {
	fx.In

	WeightUC usecase.WeightUsecase
	Logger   *slog.Logger
}

// WeightHandler holds dependencies for weight-entry handlers.
type WeightHandler struct {
	weightUC usecase.WeightUsecase
	logger   *slog.Logger
}

// NewWeightHandler is the constructor for WeightHandler.
func NewWeightHandler(params WeightHandlerParams) *WeightHandler {
	return &WeightHandler{
		weightUC: params.WeightUC,
		logger:   params.Logger,
	}
}

// List returns the caller's entries newest-first.
func (h *WeightHandler) List(c echo.Context) error {
	entries, err := h.weightUC.ListEntries(c.Request().Context(), middleware.UserID(c), queryLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// Create records a manual weight entry.
func (h *WeightHandler) Create(c echo.Context) error {
	var input usecase.CreateWeightInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	entry, err := h.weightUC.CreateEntry(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Weight entry created")
}

// Get returns one entry owned by the caller.
func (h *WeightHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.weightUC.GetEntry(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "")
}

// Delete removes one entry owned by the caller.
func (h *WeightHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.weightUC.DeleteEntry(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Weight entry deleted")
}

// UploadPhoto accepts a multipart scale photo and records the detected weight.
func (h *WeightHandler) UploadPhoto(c echo.Context) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.BadRequest(c, "UPLOAD_MISSING", "Multipart field 'photo' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	input := usecase.PhotoUploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Photo:       file,
		Unit:        c.FormValue("unit"),
		Notes:       c.FormValue("notes"),
	}

	entry, err := h.weightUC.CreateEntryFromPhoto(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Photo processed")
}

// queryLimit parses the optional ?limit= parameter; invalid values mean no cap.
func queryLimit(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}

// pathUUID parses a UUID path parameter, yielding a 404 on garbage so an
// unparseable id behaves like a missing row.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}

	return id, nil
}

package handler

import (
	"net/http"

	"weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/response"
	"weightwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler serves the caller's audit trail.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler.
func NewActivityHandler(activityUC usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{activityUC: activityUC}
}

// List returns the caller's activity rows newest-first.
func (h *ActivityHandler) List(c echo.Context) error {
	logs, err := h.activityUC.ListActivities(c.Request().Context(), middleware.UserID(c), queryLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}

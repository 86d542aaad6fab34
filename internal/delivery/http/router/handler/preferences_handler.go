package handler

import (
	"net/http"

	"weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/response"
	"weightwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreferencesHandler holds dependencies for preference handlers.
type PreferencesHandler struct {
	preferencesUC usecase.PreferencesUsecase
}

// NewPreferencesHandler is the constructor for PreferencesHandler.
func NewPreferencesHandler(preferencesUC usecase.PreferencesUsecase) *PreferencesHandler {
	return &PreferencesHandler{preferencesUC: preferencesUC}
}

// Get returns the caller's preferences, 404 until they have been set.
func (h *PreferencesHandler) Get(c echo.Context) error {
	prefs, err := h.preferencesUC.GetPreferences(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "")
}

// Update replaces the caller's preferences wholesale.
func (h *PreferencesHandler) Update(c echo.Context) error {
	var input usecase.UpdatePreferencesInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	prefs, err := h.preferencesUC.UpdatePreferences(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences updated")
}

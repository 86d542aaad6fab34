package handler

import (
	"net/http"

	"weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/response"
	"weightwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecommendationHandler holds dependencies for recommendation handlers.
type RecommendationHandler struct {
	recommendationUC usecase.RecommendationUsecase
}

// NewRecommendationHandler is the constructor for RecommendationHandler.
func NewRecommendationHandler(recommendationUC usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{recommendationUC: recommendationUC}
}

// List returns the caller's recommendations, best score first.
func (h *RecommendationHandler) List(c echo.Context) error {
	recs, err := h.recommendationUC.ListRecommendations(c.Request().Context(), middleware.UserID(c), queryLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recs, "")
}

// MarkViewed flags one recommendation as seen; repeat calls are no-ops.
func (h *RecommendationHandler) MarkViewed(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.recommendationUC.MarkViewed(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Recommendation marked viewed")
}

package handler

import (
	"net/http"

	"weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/response"
	"weightwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for business-review handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(reviewUC usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// Create records the caller's review of a business.
func (h *ReviewHandler) Create(c echo.Context) error {
	businessID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), middleware.UserID(c), businessID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created")
}

// List returns a business's reviews newest-first.
func (h *ReviewHandler) List(c echo.Context) error {
	businessID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), businessID, queryLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

package handler

import (
	"log/slog"
	"net/http"

	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/response"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// submitRatingRequest is the payload a normal user supplies to rate a store.
type submitRatingRequest struct {
	StoreID uint `json:"storeId" validate:"required"`
	Rating  int  `json:"rating" validate:"required,gte=1,lte=5"`
}

// updateRatingRequest changes the value of an existing rating.
type updateRatingRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// RatingHandler holds dependencies for rating-related handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{uc: uc, logger: logger}
}

// Submit records the caller's rating for a store, normal_user only.
// Resubmitting for the same store overwrites the prior value.
func (h *RatingHandler) Submit(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrMissingToken
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rating, err := h.uc.SubmitRating(c.Request().Context(), principal.ID, &usecase.SubmitRatingInput{
		StoreID: req.StoreID,
		Rating:  req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rating, "Rating submitted successfully")
}

// Update changes the value of a rating the caller authored, normal_user only.
func (h *RatingHandler) Update(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrMissingToken
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rating id")
	}

	var req updateRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rating, err := h.uc.UpdateRating(c.Request().Context(), principal.ID, id, req.Rating)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rating, "Rating updated successfully")
}

// List returns every rating with rater and store details, admin only.
func (h *RatingHandler) List(c echo.Context) error {
	ratings, err := h.uc.ListRatings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved successfully")
}

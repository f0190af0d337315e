package handler

import (
	"context"
	"net/http"
	"testing"

	httpmiddleware "ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/validator"
	"ratehub/internal/domain/entity"
	mockUC "ratehub/internal/mocks/usecase"
	"ratehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newRatingTestServer wires the rating routes behind a stubbed principal so
// requests exercise binding, validation, and the central error handler.
func newRatingTestServer(t *testing.T, principal *entity.Principal) (*echo.Echo, *mockUC.MockRatingUsecase) {
	uc := mockUC.NewMockRatingUsecase(t)
	handler := NewRatingHandler(uc, newDiscardLogger())

	withPrincipal := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			httpmiddleware.SetPrincipal(c, principal)

			return next(c)
		}
	}

	e := echo.New()
	e.Validator = validator.New(nil)
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.POST("/api/ratings", handler.Submit, withPrincipal)
	e.PUT("/api/ratings/:id", handler.Update, withPrincipal)

	return e, uc
}

func TestRatingHandler_Submit_ReturnsCreated(t *testing.T) {
	principal := &entity.Principal{ID: 7, Email: "meera@example.com", Role: entity.RoleNormalUser}
	e, uc := newRatingTestServer(t, principal)

	uc.EXPECT().
		SubmitRating(mock.Anything, uint(7), mock.AnythingOfType("*usecase.SubmitRatingInput")).
		Run(func(ctx context.Context, userID uint, input *usecase.SubmitRatingInput) {
			assert.Equal(t, uint(3), input.StoreID)
			assert.Equal(t, 4, input.Rating)
		}).
		Return(&entity.Rating{ID: 10, UserID: 7, StoreID: 3, Rating: 4}, nil)

	rec := doJSON(e, http.MethodPost, "/api/ratings", `{"storeId": 3, "rating": 4}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rating submitted successfully")
}

func TestRatingHandler_Submit_RatingOutOfBounds(t *testing.T) {
	principal := &entity.Principal{ID: 7, Role: entity.RoleNormalUser}
	e, _ := newRatingTestServer(t, principal)

	rec := doJSON(e, http.MethodPost, "/api/ratings", `{"storeId": 3, "rating": 6}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestRatingHandler_Update_ReturnsOK(t *testing.T) {
	principal := &entity.Principal{ID: 7, Role: entity.RoleNormalUser}
	e, uc := newRatingTestServer(t, principal)

	uc.EXPECT().
		UpdateRating(mock.Anything, uint(7), uint(10), 2).
		Return(&entity.Rating{ID: 10, UserID: 7, StoreID: 3, Rating: 2}, nil)

	rec := doJSON(e, http.MethodPut, "/api/ratings/10", `{"rating": 2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rating updated successfully")
}

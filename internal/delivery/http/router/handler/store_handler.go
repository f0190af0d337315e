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

// createStoreRequest is the payload an admin supplies to register a store.
type createStoreRequest struct {
	Name    string `json:"name" validate:"required,min=5,max=60"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"max=400"`
	OwnerID uint   `json:"ownerId" validate:"required"`
}

// StoreHandler holds dependencies for store-related handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, logger: logger}
}

// List returns stores with aggregates for any authenticated principal.
// Normal users additionally see their own submitted rating per store.
func (h *StoreHandler) List(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrMissingToken
	}

	input := &usecase.ListStoresInput{
		Search:  c.QueryParam("search"),
		Name:    c.QueryParam("name"),
		Address: c.QueryParam("address"),
	}

	stores, err := h.uc.ListStores(c.Request().Context(), principal, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// Create registers a store for a store_owner account, admin only.
func (h *StoreHandler) Create(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.uc.CreateStore(c.Request().Context(), &usecase.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created successfully")
}

// Delete removes a store and its ratings, admin only.
func (h *StoreHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	store, err := h.uc.DeleteStore(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store deleted successfully")
}

// MyStore returns the store owned by the caller, store_owner only.
func (h *StoreHandler) MyStore(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrMissingToken
	}

	store, err := h.uc.GetMyStore(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// MyStoreRatings returns the ratings on the caller's stores, store_owner only.
func (h *StoreHandler) MyStoreRatings(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrMissingToken
	}

	ratings, err := h.uc.ListMyStoreRatings(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved successfully")
}

// Owners returns every store_owner account, admin only. It feeds the owner
// dropdown on the store creation form.
func (h *StoreHandler) Owners(c echo.Context) error {
	owners, err := h.uc.ListStoreOwners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owners, "Store owners retrieved successfully")
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"ratehub/internal/delivery/http/response"
	"ratehub/internal/domain/entity"
	"ratehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createUserRequest is the payload an admin supplies to create any account.
type createUserRequest struct {
	Name     string `json:"name" validate:"required,min=5,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Address  string `json:"address" validate:"max=400"`
	Role     string `json:"role" validate:"omitempty,oneof=admin normal_user store_owner"`
}

// UserHandler holds dependencies for user management handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// List returns users matching the query filters, admin only.
func (h *UserHandler) List(c echo.Context) error {
	input := &usecase.ListUsersInput{
		Role:    c.QueryParam("role"),
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
		SortBy:  c.QueryParam("sortBy"),
		Order:   c.QueryParam("order"),
	}

	users, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// Search returns users whose name contains the given fragment.
func (h *UserHandler) Search(c echo.Context) error {
	users, err := h.uc.SearchUsers(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// Get returns one user by ID.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// Create creates an account with an explicit role, admin only.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// Delete removes a user and everything owned by it, admin only.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.uc.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User deleted successfully")
}

// parseIDParam reads the :id path parameter as an unsigned integer.
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"
	mockRepo "ratehub/internal/mocks/repository"
	mockSvc "ratehub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c, rec := newAuthTestContext(t, "Bearer valid_token")

	tokenSvc.EXPECT().Validate("valid_token").Return(&service.Claims{
		UserID: 7,
		Email:  "aarav@example.com",
		Role:   entity.RoleNormalUser,
	}, nil)
	userRepo.EXPECT().
		FindByID(c.Request().Context(), uint(7)).
		Return(&entity.User{ID: 7, Email: "aarav@example.com", Role: entity.RoleNormalUser}, nil)

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	principal := GetPrincipal(c)
	require.NotNil(t, principal)
	assert.Equal(t, uint(7), principal.ID)
	assert.Equal(t, entity.RoleNormalUser, principal.Role)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	c, _ := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrMissingToken))
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	c, _ := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrMissingToken))
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, mockRepo.NewMockUserRepository(t))

	c, _ := newAuthTestContext(t, "Bearer tampered_token")

	tokenSvc.EXPECT().Validate("tampered_token").Return(nil, errors.New("signature is invalid"))

	err := m.Authenticate(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthMiddleware_Authenticate_DeletedAccount(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c, _ := newAuthTestContext(t, "Bearer valid_token")

	tokenSvc.EXPECT().Validate("valid_token").Return(&service.Claims{UserID: 7}, nil)
	userRepo.EXPECT().
		FindByID(c.Request().Context(), uint(7)).
		Return(nil, repository.ErrUserNotFound)

	err := m.Authenticate(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthMiddleware_Authenticate_ReloadsCurrentRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	c, _ := newAuthTestContext(t, "Bearer valid_token")

	// The token still carries the old role; the reloaded account wins.
	tokenSvc.EXPECT().Validate("valid_token").Return(&service.Claims{
		UserID: 7,
		Role:   entity.RoleNormalUser,
	}, nil)
	userRepo.EXPECT().
		FindByID(c.Request().Context(), uint(7)).
		Return(&entity.User{ID: 7, Role: entity.RoleStoreOwner}, nil)

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, GetPrincipal(c).Role)
}

func TestAuthMiddleware_RequireRole_Allowed(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	c, rec := newAuthTestContext(t, "")
	SetPrincipal(c, &entity.Principal{ID: 1, Role: entity.RoleAdmin})

	err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_Denied(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	for _, role := range []entity.Role{entity.RoleNormalUser, entity.RoleStoreOwner} {
		c, _ := newAuthTestContext(t, "")
		SetPrincipal(c, &entity.Principal{ID: 1, Role: role})

		err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden), "role %s must be rejected", role)
	}
}

func TestAuthMiddleware_RequireRole_NoPrincipal(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	c, _ := newAuthTestContext(t, "")

	err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthMiddleware_RequireRole_MultipleRoles(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	c, rec := newAuthTestContext(t, "")
	SetPrincipal(c, &entity.Principal{ID: 1, Role: entity.RoleStoreOwner})

	err := m.RequireRole(entity.RoleAdmin, entity.RoleStoreOwner)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

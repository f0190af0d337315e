package middleware

import (
	"strings"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// principalKey is the echo.Context key the authenticated principal lives under.
const principalKey = "principal"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and reloads the account behind it.
// Reloading means a deleted account or a changed role takes effect
// immediately, not at token expiry.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrMissingToken
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			// A token for a deleted account is as invalid as a forged one.
			return domainerrors.ErrInvalidToken
		}

		principal := &entity.Principal{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		}
		c.Set(principalKey, principal)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the principal holds one
// of the given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := GetPrincipal(c)
			if principal == nil || !allowed.Contains(principal.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the authenticated principal, nil when the request has
// not passed Authenticate.
func GetPrincipal(c echo.Context) *entity.Principal {
	principal, _ := c.Get(principalKey).(*entity.Principal)

	return principal
}

// SetPrincipal attaches a principal to the context. Exposed for handler tests.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(principalKey, principal)
}

package service

import (
	"github.com/golang-jwt/jwt/v5"

	"ratehub/internal/domain/entity"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uint        `json:"uid"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-limited access token for the given user.
	Generate(user *entity.User) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns its claims.
	Validate(tokenString string) (*Claims, error)
}

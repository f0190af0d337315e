package auth

import (
	"testing"
	"time"

	"ratehub/config"
	"ratehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testAuthConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		JWTSecret: "test_secret_key_very_long_for_testing",
		TokenTTL:  ttl,
	}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	user := &entity.User{
		ID:    42,
		Email: "owner@example.com",
		Role:  entity.RoleStoreOwner,
	}

	token, err := jwtService.Generate(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig(time.Hour))
	assert.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig(-time.Minute))
	assert.NoError(t, err)

	user := &entity.User{ID: 1, Email: "user@example.com", Role: entity.RoleNormalUser}
	token, err := jwtService.Generate(user)
	assert.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig(time.Hour))
	assert.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.Auth = &config.AuthConfig{JWTSecret: "another_secret_entirely", TokenTTL: time.Hour}
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	user := &entity.User{ID: 1, Email: "user@example.com", Role: entity.RoleNormalUser}
	token, err := jwtService.Generate(user)
	assert.NoError(t, err)

	claims, err := otherService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

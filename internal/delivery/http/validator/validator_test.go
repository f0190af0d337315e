package validator

import (
	"testing"

	"ratehub/config"
	domainerrors "ratehub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name     string `validate:"required,min=5,max=60"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	Address  string `validate:"max=400"`
}

func TestValidator_ValidPayload(t *testing.T) {
	v := New(nil)

	err := v.Validate(registerPayload{
		Name:     "Aarav Mehta Kumar",
		Email:    "aarav@example.com",
		Password: "Password1!",
	})

	assert.NoError(t, err)
}

func TestValidator_CollectsAllFieldFailures(t *testing.T) {
	v := New(nil)

	err := v.Validate(registerPayload{
		Name:     "Bob",
		Email:    "not-an-email",
		Password: "short",
	})

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields, 3)

	fields := make(map[string]string, len(validationErr.Fields))
	for _, fe := range validationErr.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields["name"], "at least 5")
}

func TestValidator_PasswordRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid", "Password1!", true},
		{"valid at minimum length", "Abcdef1!", true},
		{"valid at maximum length", "Abcdefghijklmn1!", true},
		{"too short", "Abc1!", false},
		{"too long", "Abcdefghijklmno1!", false},
		{"no uppercase", "password1!", false},
		{"no special character", "Password12", false},
		{"uppercase and special only counted once each", "PASSWORD!!", true},
	}

	type payload struct {
		Password string `validate:"password"`
	}

	v := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(payload{Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidator_PasswordRuleFollowsPolicy(t *testing.T) {
	type payload struct {
		Password string `validate:"password"`
	}

	t.Run("longer minimum from config", func(t *testing.T) {
		v := New(&config.PasswordStrengthConfig{
			MinLength:        12,
			MaxLength:        20,
			RequireUppercase: true,
			RequireSpecial:   true,
		})

		assert.Error(t, v.Validate(payload{Password: "Abcdefgh1!"}))
		assert.NoError(t, v.Validate(payload{Password: "Abcdefghijkl1!"}))
	})

	t.Run("relaxed character classes", func(t *testing.T) {
		v := New(&config.PasswordStrengthConfig{
			MinLength: 8,
			MaxLength: 16,
		})

		assert.NoError(t, v.Validate(payload{Password: "lowercase1"}))
	})

	t.Run("zero values fall back to defaults", func(t *testing.T) {
		v := New(&config.PasswordStrengthConfig{RequireUppercase: true, RequireSpecial: true})

		assert.Error(t, v.Validate(payload{Password: "Abc1!"}))
		assert.NoError(t, v.Validate(payload{Password: "Password1!"}))
	})
}

func TestValidator_RatingBounds(t *testing.T) {
	type payload struct {
		Rating int `validate:"gte=1,lte=5"`
	}

	v := New(nil)

	assert.NoError(t, v.Validate(payload{Rating: 1}))
	assert.NoError(t, v.Validate(payload{Rating: 5}))
	assert.Error(t, v.Validate(payload{Rating: 0}))
	assert.Error(t, v.Validate(payload{Rating: 6}))
}

func TestValidator_RoleEnum(t *testing.T) {
	type payload struct {
		Role string `validate:"omitempty,oneof=admin normal_user store_owner"`
	}

	v := New(nil)

	assert.NoError(t, v.Validate(payload{Role: ""}))
	assert.NoError(t, v.Validate(payload{Role: "store_owner"}))
	assert.Error(t, v.Validate(payload{Role: "superuser"}))
}

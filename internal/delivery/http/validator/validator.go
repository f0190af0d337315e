// Package validator wires go-playground/validator into Echo's request validation.
package validator

import (
	"fmt"
	"strings"
	"unicode"

	"ratehub/config"
	domainerrors "ratehub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	defaultPasswordMinLength = 8
	defaultPasswordMaxLength = 16
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v      *validator.Validate
	policy config.PasswordStrengthConfig
}

// New returns an echoValidator ready to be assigned to echo.Echo.Validator.
// A nil policy falls back to the default password rule of 8 to 16 characters
// with at least one uppercase letter and one special character.
func New(policy *config.PasswordStrengthConfig) *echoValidator {
	resolved := resolvePolicy(policy)

	ev := &echoValidator{
		v:      validator.New(),
		policy: resolved,
	}

	_ = ev.v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return ev.isStrongPassword(fl.Field().String())
	})

	return ev
}

func resolvePolicy(policy *config.PasswordStrengthConfig) config.PasswordStrengthConfig {
	if policy == nil {
		return config.PasswordStrengthConfig{
			MinLength:        defaultPasswordMinLength,
			MaxLength:        defaultPasswordMaxLength,
			RequireUppercase: true,
			RequireSpecial:   true,
		}
	}

	resolved := *policy
	if resolved.MinLength <= 0 {
		resolved.MinLength = defaultPasswordMinLength
	}
	if resolved.MaxLength < resolved.MinLength {
		resolved.MaxLength = defaultPasswordMaxLength
	}

	return resolved
}

// Validate satisfies the echo.Validator interface. Failures surface as a
// structured validation error carrying every offending field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]domainerrors.FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, domainerrors.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: ev.fieldMessage(fe),
			})
		}

		return domainerrors.NewValidationError(fields...)
	}

	return err
}

// fieldMessage converts a single ValidationError into a human-readable message.
func (ev *echoValidator) fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "password":
		return field + " " + ev.passwordRuleDescription()
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func (ev *echoValidator) passwordRuleDescription() string {
	desc := fmt.Sprintf("must be %d-%d characters", ev.policy.MinLength, ev.policy.MaxLength)

	var requirements []string
	if ev.policy.RequireUppercase {
		requirements = append(requirements, "one uppercase letter")
	}
	if ev.policy.RequireSpecial {
		requirements = append(requirements, "one special character")
	}
	if len(requirements) != 0 {
		desc += " with at least " + strings.Join(requirements, " and ")
	}

	return desc
}

func (ev *echoValidator) isStrongPassword(password string) bool {
	if len(password) < ev.policy.MinLength || len(password) > ev.policy.MaxLength {
		return false
	}

	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}

	if ev.policy.RequireUppercase && !hasUpper {
		return false
	}
	if ev.policy.RequireSpecial && !hasSpecial {
		return false
	}

	return true
}

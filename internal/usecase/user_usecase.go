// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Self-registration always produces a normal_user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdatePasswordInput carries the email plus current password acting as the
// credential for a password change.
type UpdatePasswordInput struct {
	Email           string
	CurrentPassword string
	NewPassword     string
}

// CreateUserInput defines the data an admin supplies to create any account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role
}

// ListUsersInput narrows and orders the admin user listing.
type ListUsersInput struct {
	Role    string
	Name    string
	Email   string
	Address string
	SortBy  string
	Order   string
}

// --- Output DTOs ---

// AuthOutput returns the signed token and the authenticated user.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UserUsecase defines the interface for account and user-management
// operations. This is the contract the delivery layer depends on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error

	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.UserWithRating, error)
	SearchUsers(ctx context.Context, name string) ([]*entity.UserWithRating, error)
	GetUser(ctx context.Context, id uint) (*entity.UserWithRating, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) (*entity.User, error)
}

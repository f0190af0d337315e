// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows and orders user listings. Empty fields are ignored.
type UserFilter struct {
	Role    entity.Role
	Name    string // Substring match, case-insensitive.
	Email   string // Substring match, case-insensitive.
	Address string // Substring match, case-insensitive.
	SortBy  string // One of name, email, role, created_at. Defaults to name.
	Order   string // asc or desc. Defaults to asc.
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves users matching the filter, each store owner decorated
	// with the average rating across the stores they own.
	List(ctx context.Context, filter UserFilter) ([]*entity.UserWithRating, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user row by ID.
	Delete(ctx context.Context, id uint) error

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"
)

// ErrStoreNotFound is a domain-specific error returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreFilter narrows store listings. Empty fields are ignored.
type StoreFilter struct {
	Search  string // Matches name or address, case-insensitive.
	Name    string // Substring match on name.
	Address string // Substring match on address.
}

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Store, error)

	// FindByOwnerID retrieves the store owned by the given user, with its
	// rating aggregates. Returns ErrStoreNotFound when the owner has none.
	FindByOwnerID(ctx context.Context, ownerID uint) (*entity.StoreWithStats, error)

	// List retrieves stores matching the filter, each with its rating
	// aggregates, ordered by name.
	List(ctx context.Context, filter StoreFilter) ([]*entity.StoreWithStats, error)

	// Create persists a new store entity to the storage.
	Create(ctx context.Context, store *entity.Store) error

	// Delete removes a store row by ID.
	Delete(ctx context.Context, id uint) error

	// DeleteByOwnerID removes all stores owned by the given user.
	DeleteByOwnerID(ctx context.Context, ownerID uint) error

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"
)

// ErrRatingNotFound is a domain-specific error returned when a rating is not found.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines the standard operations for rating persistence.
type RatingRepository interface {
	// FindByID retrieves a single rating by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Rating, error)

	// FindByUserAndStore retrieves the rating a user gave a store, if any.
	FindByUserAndStore(ctx context.Context, userID, storeID uint) (*entity.Rating, error)

	// Upsert inserts the rating or, when a row already exists for the same
	// (user_id, store_id) pair, overwrites its value. Never creates duplicates.
	Upsert(ctx context.Context, rating *entity.Rating) error

	// Update persists a new value for an existing rating row.
	Update(ctx context.Context, rating *entity.Rating) error

	// ListAll retrieves every rating joined with rater and store details,
	// newest first.
	ListAll(ctx context.Context) ([]*entity.RatingDetail, error)

	// ListForOwner retrieves the ratings on all stores owned by the given
	// user, with rater contact details, newest first.
	ListForOwner(ctx context.Context, ownerID uint) ([]*entity.StoreRatingEntry, error)

	// AverageForOwner returns the average rating across all stores owned by
	// the given user, 0 when none exist.
	AverageForOwner(ctx context.Context, ownerID uint) (float64, error)

	// DeleteByUserID removes every rating authored by the given user.
	DeleteByUserID(ctx context.Context, userID uint) error

	// DeleteByStoreID removes every rating referencing the given store.
	DeleteByStoreID(ctx context.Context, storeID uint) error

	// DeleteByOwnerStores removes every rating on stores owned by the given user.
	DeleteByOwnerStores(ctx context.Context, ownerID uint) error

	// Count returns the total number of ratings.
	Count(ctx context.Context) (int64, error)
}

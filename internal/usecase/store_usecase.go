package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
)

// CreateStoreInput defines the data an admin supplies to register a store.
type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID uint
}

// ListStoresInput narrows the store listing for any authenticated principal.
type ListStoresInput struct {
	Search  string
	Name    string
	Address string
}

// StoreView is a store with its aggregates plus, for normal users, the
// rating the requesting principal has already submitted.
type StoreView struct {
	entity.StoreWithStats
	UserSubmittedRating *int `json:"user_submitted_rating,omitempty"`
}

// StoreUsecase defines the interface for store-related business operations.
type StoreUsecase interface {
	// ListStores lists stores with aggregates. When the principal is a
	// normal_user, each row carries that user's own submitted rating.
	ListStores(ctx context.Context, principal *entity.Principal, input *ListStoresInput) ([]*StoreView, error)

	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)
	DeleteStore(ctx context.Context, id uint) (*entity.Store, error)

	// GetMyStore returns the store owned by the principal, with aggregates.
	GetMyStore(ctx context.Context, ownerID uint) (*entity.StoreWithStats, error)

	// ListMyStoreRatings returns the ratings on the principal's stores.
	ListMyStoreRatings(ctx context.Context, ownerID uint) ([]*entity.StoreRatingEntry, error)

	// ListStoreOwners returns every user holding the store_owner role.
	ListStoreOwners(ctx context.Context) ([]*entity.User, error)
}

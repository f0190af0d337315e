package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ratehub/internal/delivery/context"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/pkg/errors"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager  repository.TransactionManager
	storeRepo  repository.StoreRepository
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	txManager repository.TransactionManager,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		txManager:  txManager,
		storeRepo:  storeRepo,
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
		logger:     logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStores returns stores with their aggregates. Normal users additionally
// see the rating they themselves submitted for each store.
func (srv *storeService) ListStores(ctx context.Context, principal *entity.Principal, input *usecase.ListStoresInput) ([]*usecase.StoreView, error) {
	filter := repository.StoreFilter{
		Search:  input.Search,
		Name:    input.Name,
		Address: input.Address,
	}

	stores, err := srv.storeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	views := make([]*usecase.StoreView, 0, len(stores))
	for _, store := range stores {
		views = append(views, &usecase.StoreView{StoreWithStats: *store})
	}

	if principal != nil && principal.Role == entity.RoleNormalUser {
		for _, view := range views {
			rating, err := srv.ratingRepo.FindByUserAndStore(ctx, principal.ID, view.ID)
			if err != nil {
				if errors.Is(err, repository.ErrRatingNotFound) {
					continue
				}

				return nil, errors.Wrap(err, "failed to load submitted rating")
			}
			value := rating.Rating
			view.UserSubmittedRating = &value
		}
	}

	return views, nil
}

// CreateStore registers a store for an existing store_owner account.
func (srv *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	owner, err := srv.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidOwner.WrapMessage("store creation failed")
		}

		return nil, errors.Wrap(err, "failed to find store owner")
	}
	if owner.Role != entity.RoleStoreOwner {
		return nil, domainerrors.ErrInvalidOwner.WrapMessage("store creation failed")
	}

	email := normalizeEmail(input.Email)
	newStore := &entity.Store{
		Name:    strings.TrimSpace(input.Name),
		Email:   email,
		Address: input.Address,
		OwnerID: owner.ID,
	}

	srv.log(ctx).Info("Creating store",
		slog.String("email", email), slog.Uint64("ownerID", uint64(owner.ID)))

	if err := srv.storeRepo.Create(ctx, newStore); err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	return newStore, nil
}

// DeleteStore removes a store and all ratings referencing it in one transaction.
func (srv *storeService) DeleteStore(ctx context.Context, id uint) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("store deletion failed")
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	srv.log(ctx).Info("Deleting store", slog.Uint64("storeID", uint64(id)))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RatingRepo().DeleteByStoreID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete store ratings")
		}

		return repoFactory.StoreRepo().Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute store deletion transaction", slog.Uint64("storeID", uint64(id)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute store deletion transaction")
	}

	return store, nil
}

// GetMyStore returns the store owned by the caller, with its aggregates.
func (srv *storeService) GetMyStore(ctx context.Context, ownerID uint) (*entity.StoreWithStats, error) {
	store, err := srv.storeRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("no store registered for this owner")
		}

		return nil, errors.Wrap(err, "failed to find store by owner")
	}

	return store, nil
}

// ListMyStoreRatings returns the ratings on the caller's stores, with rater
// contact details.
func (srv *storeService) ListMyStoreRatings(ctx context.Context, ownerID uint) ([]*entity.StoreRatingEntry, error) {
	entries, err := srv.ratingRepo.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner store ratings")
	}

	return entries, nil
}

// ListStoreOwners returns every account holding the store_owner role, for
// the owner dropdown on the store creation form.
func (srv *storeService) ListStoreOwners(ctx context.Context) ([]*entity.User, error) {
	owners, err := srv.userRepo.List(ctx, repository.UserFilter{Role: entity.RoleStoreOwner})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store owners")
	}

	users := make([]*entity.User, 0, len(owners))
	for _, owner := range owners {
		user := owner.User
		users = append(users, &user)
	}

	return users, nil
}

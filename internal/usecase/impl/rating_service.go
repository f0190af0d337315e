package impl

import (
	"context"
	"log/slog"

	deliverycontext "ratehub/internal/delivery/context"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/pkg/errors"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
	logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(
	ratingRepo repository.RatingRepository,
	storeRepo repository.StoreRepository,
	logger *slog.Logger,
) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
		logger:     logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitRating records the user's rating for a store. A second submission
// for the same store overwrites the first instead of creating a duplicate.
func (srv *ratingService) SubmitRating(ctx context.Context, userID uint, input *usecase.SubmitRatingInput) (*entity.Rating, error) {
	if _, err := srv.storeRepo.FindByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("rating submission failed")
		}

		return nil, errors.Wrap(err, "failed to find rated store")
	}

	rating := &entity.Rating{
		UserID:  userID,
		StoreID: input.StoreID,
		Rating:  input.Rating,
	}

	if err := srv.ratingRepo.Upsert(ctx, rating); err != nil {
		srv.log(ctx).Error("Failed to upsert rating",
			slog.Uint64("userID", uint64(userID)), slog.Uint64("storeID", uint64(input.StoreID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upsert rating")
	}

	srv.log(ctx).Debug("Rating submitted",
		slog.Uint64("userID", uint64(userID)), slog.Uint64("storeID", uint64(input.StoreID)), slog.Int("rating", rating.Rating))

	return rating, nil
}

// UpdateRating changes the value of a rating. Only the rating's author may
// update it.
func (srv *ratingService) UpdateRating(ctx context.Context, userID, ratingID uint, value int) (*entity.Rating, error) {
	rating, err := srv.ratingRepo.FindByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, domainerrors.ErrRatingNotFound.WrapMessage("rating update failed")
		}

		return nil, errors.Wrap(err, "failed to find rating by id")
	}

	if rating.UserID != userID {
		srv.log(ctx).Warn("Rating update denied",
			slog.Uint64("userID", uint64(userID)), slog.Uint64("ratingID", uint64(ratingID)))

		return nil, domainerrors.ErrRatingNotFound.WrapMessage("rating update failed")
	}

	rating.Rating = value
	if err := srv.ratingRepo.Update(ctx, rating); err != nil {
		return nil, errors.Wrap(err, "failed to persist rating update")
	}

	return rating, nil
}

// ListRatings returns every rating with rater and store details.
func (srv *ratingService) ListRatings(ctx context.Context) ([]*entity.RatingDetail, error) {
	details, err := srv.ratingRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return details, nil
}

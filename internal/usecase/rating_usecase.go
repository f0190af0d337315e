package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
)

// SubmitRatingInput defines the data a normal user supplies to rate a store.
type SubmitRatingInput struct {
	StoreID uint
	Rating  int
}

// RatingUsecase defines the interface for rating-related business operations.
type RatingUsecase interface {
	// SubmitRating upserts the user's rating for a store. Resubmission for
	// the same store overwrites the prior value.
	SubmitRating(ctx context.Context, userID uint, input *SubmitRatingInput) (*entity.Rating, error)

	// UpdateRating changes the value of a rating the user authored.
	UpdateRating(ctx context.Context, userID, ratingID uint, value int) (*entity.Rating, error)

	// ListRatings returns every rating with rater and store details.
	ListRatings(ctx context.Context) ([]*entity.RatingDetail, error)
}

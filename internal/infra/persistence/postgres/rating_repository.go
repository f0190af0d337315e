package postgres

import (
	"context"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the domain.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// FindByID retrieves a single rating by its unique ID.
func (repo *ratingRepository) FindByID(ctx context.Context, id uint) (*entity.Rating, error) {
	var ratingM model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by id")
	}

	return ratingM.ToEntity(), nil
}

// FindByUserAndStore retrieves the rating a user gave a store, if any.
func (repo *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uint) (*entity.Rating, error) {
	var ratingM model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by user and store")
	}

	return ratingM.ToEntity(), nil
}

// Upsert inserts the rating or, when a row already exists for the same
// (user_id, store_id) pair, overwrites its value. The conflict target is the
// composite unique index, so concurrent submissions cannot create duplicates.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	ratingM := model.RatingModelFromEntity(rating)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("rated store does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	// On conflict the generated ID is not reported back. Reload so the caller
	// always sees the persisted row.
	var current model.RatingModel
	err = repo.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", rating.UserID, rating.StoreID).
		First(&current).Error
	if err != nil {
		return errors.Wrap(err, "failed to reload upserted rating")
	}

	rating.ID = current.ID
	rating.CreatedAt = current.CreatedAt
	rating.UpdatedAt = current.UpdatedAt

	return nil
}

// Update persists a new value for an existing rating row.
func (repo *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	ratingM := model.RatingModelFromEntity(rating)

	if err := repo.db.WithContext(ctx).Save(ratingM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update rating")
	}

	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// ListAll retrieves every rating joined with rater and store details, newest first.
func (repo *ratingRepository) ListAll(ctx context.Context) ([]*entity.RatingDetail, error) {
	var details []*entity.RatingDetail
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("ratings.id, ratings.rating, users.name AS user_name, users.email AS user_email, stores.name AS store_name, stores.email AS store_email, ratings.created_at, ratings.updated_at").
		Joins("JOIN users ON users.id = ratings.user_id").
		Joins("JOIN stores ON stores.id = ratings.store_id").
		Order("ratings.created_at DESC").
		Scan(&details).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return details, nil
}

// ListForOwner retrieves the ratings on all stores owned by the given user,
// with rater contact details, newest first.
func (repo *ratingRepository) ListForOwner(ctx context.Context, ownerID uint) ([]*entity.StoreRatingEntry, error) {
	var entries []*entity.StoreRatingEntry
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("ratings.rating, users.name AS user_name, users.email AS user_email, users.address AS user_address, ratings.created_at").
		Joins("JOIN stores ON stores.id = ratings.store_id").
		Joins("JOIN users ON users.id = ratings.user_id").
		Where("stores.owner_id = ?", ownerID).
		Order("ratings.created_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings for owner")
	}

	return entries, nil
}

// AverageForOwner returns the average rating across all stores owned by the
// given user, 0 when none exist.
func (repo *ratingRepository) AverageForOwner(ctx context.Context, ownerID uint) (float64, error) {
	var average float64
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(ROUND(AVG(ratings.rating)::numeric, 2), 0)").
		Joins("JOIN stores ON stores.id = ratings.store_id").
		Where("stores.owner_id = ?", ownerID).
		Scan(&average).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to compute owner average rating")
	}

	return average, nil
}

// DeleteByUserID removes every rating authored by the given user.
func (repo *ratingRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RatingModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete ratings by user")
	}

	return nil
}

// DeleteByStoreID removes every rating referencing the given store.
func (repo *ratingRepository) DeleteByStoreID(ctx context.Context, storeID uint) error {
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.RatingModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete ratings by store")
	}

	return nil
}

// DeleteByOwnerStores removes every rating on stores owned by the given user.
func (repo *ratingRepository) DeleteByOwnerStores(ctx context.Context, ownerID uint) error {
	subquery := repo.db.Model(&model.StoreModel{}).
		Select("id").
		Where("owner_id = ?", ownerID)

	err := repo.db.WithContext(ctx).
		Where("store_id IN (?)", subquery).
		Delete(&model.RatingModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete ratings by owner stores")
	}

	return nil
}

// Count returns the total number of ratings.
func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RatingModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ratings")
	}

	return count, nil
}

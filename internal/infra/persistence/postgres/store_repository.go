package postgres

import (
	"context"
	"time"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the domain.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// storeWithStatsRow is the scan target for the aggregated store listing.
type storeWithStatsRow struct {
	ID            uint
	Name          string
	Email         string
	Address       string
	OwnerID       uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
	OverallRating float64
	TotalRatings  int64
}

func (row *storeWithStatsRow) toEntity() *entity.StoreWithStats {
	return &entity.StoreWithStats{
		Store: entity.Store{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Address:   row.Address,
			OwnerID:   row.OwnerID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		OverallRating: row.OverallRating,
		TotalRatings:  row.TotalRatings,
	}
}

// withStats joins ratings and aggregates them per store.
func (repo *storeRepository) withStats(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Select("stores.*, COALESCE(ROUND(AVG(ratings.rating)::numeric, 2), 0) AS overall_rating, COUNT(ratings.id) AS total_ratings").
		Joins("LEFT JOIN ratings ON ratings.store_id = stores.id").
		Group("stores.id")
}

// FindByID retrieves a single store by its unique ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uint) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return storeM.ToEntity(), nil
}

// FindByOwnerID retrieves the store owned by the given user, with its rating aggregates.
func (repo *storeRepository) FindByOwnerID(ctx context.Context, ownerID uint) (*entity.StoreWithStats, error) {
	var row storeWithStatsRow
	err := repo.withStats(ctx).
		Where("stores.owner_id = ?", ownerID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by owner")
	}

	return row.toEntity(), nil
}

// List retrieves stores matching the filter, each with its rating aggregates.
func (repo *storeRepository) List(ctx context.Context, filter repository.StoreFilter) ([]*entity.StoreWithStats, error) {
	query := repo.withStats(ctx)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("stores.name ILIKE ? OR stores.address ILIKE ?", pattern, pattern)
	}
	if filter.Name != "" {
		query = query.Where("stores.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Address != "" {
		query = query.Where("stores.address ILIKE ?", "%"+filter.Address+"%")
	}

	var rows []*storeWithStatsRow
	if err := query.Order("stores.name ASC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.StoreWithStats, 0, len(rows))
	for _, row := range rows {
		stores = append(stores, row.toEntity())
	}

	return stores, nil
}

// Create persists a new store entity to the database.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := model.StoreModelFromEntity(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreEmailExists.WrapMessage("store email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidOwner.WrapMessage("store owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Delete removes a store row by ID.
func (repo *storeRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.StoreModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// DeleteByOwnerID removes all stores owned by the given user.
func (repo *storeRepository) DeleteByOwnerID(ctx context.Context, ownerID uint) error {
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.StoreModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete stores by owner")
	}

	return nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

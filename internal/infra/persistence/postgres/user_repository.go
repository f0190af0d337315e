// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// ownerRatingSubquery computes the average rating across the stores a user
// owns. It decorates user rows so the admin listing can show store owners'
// scores without a second round trip.
const ownerRatingSubquery = "(SELECT ROUND(AVG(r.rating)::numeric, 2) FROM ratings r JOIN stores s ON r.store_id = s.id WHERE s.owner_id = users.id)"

// userSortColumns whitelists the sortable columns of the user listing.
var userSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"created_at": "created_at",
}

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// userWithRatingRow is the scan target for the decorated user listing.
type userWithRatingRow struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Address      string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Rating       *float64
}

func (row *userWithRatingRow) toEntity() *entity.UserWithRating {
	return &entity.UserWithRating{
		User: entity.User{
			ID:           row.ID,
			Name:         row.Name,
			Email:        row.Email,
			PasswordHash: row.PasswordHash,
			Address:      row.Address,
			Role:         entity.Role(row.Role),
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		},
		Rating: row.Rating,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return userM.ToEntity(), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return userM.ToEntity(), nil
}

// List retrieves users matching the filter, store owners decorated with the
// average rating across the stores they own.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.UserWithRating, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("users.*, " + ownerRatingSubquery + " AS rating")

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Address != "" {
		query = query.Where("address ILIKE ?", "%"+filter.Address+"%")
	}

	sortColumn, ok := userSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "name"
	}
	direction := "ASC"
	if filter.Order == "desc" {
		direction = "DESC"
	}

	var rows []*userWithRatingRow
	if err := query.Order(sortColumn + " " + direction).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.UserWithRating, 0, len(rows))
	for _, row := range rows {
		// The decoration only applies to store owners.
		if entity.Role(row.Role) != entity.RoleStoreOwner {
			row.Rating = nil
		}
		users = append(users, row.toEntity())
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.UserModelFromEntity(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.UserModelFromEntity(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes a user row by ID.
func (repo *userRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Count returns the total number of users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// CountByRole returns the number of users holding the given role.
func (repo *userRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", role.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users by role")
	}

	return count, nil
}

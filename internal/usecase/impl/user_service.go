// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ratehub/internal/delivery/context"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"
	"ratehub/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	ratingRepo   repository.RatingRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		userRepo:     userRepo,
		ratingRepo:   ratingRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail lower-cases and trims an email before any lookup or insert.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a normal_user account and signs it in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting user registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         entity.RoleNormalUser,
	}

	// Uniqueness check and insert share one transaction so a concurrent
	// registration cannot slip between them.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	token, err := srv.tokenService.Generate(newUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token after registration")
	}

	srv.log(ctx).Debug("User registered successfully", slog.Uint64("userID", uint64(newUser.ID)))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Generate(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token on login")
	}

	srv.log(ctx).Debug("User logged in", slog.Uint64("userID", uint64(user.ID)))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// UpdatePassword changes a password using email plus the current password as
// the credential. The new password must differ from the current one.
func (srv *userService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("password update failed")
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Wrong current password on password update", slog.String("email", email))

		return domainerrors.ErrInvalidCredentials.WrapMessage("password update failed")
	}

	// Compare through the hasher, never against stored plaintext.
	if srv.hasher.Check(input.NewPassword, user.PasswordHash) {
		return domainerrors.ErrSamePassword.WrapMessage("password update failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	srv.log(ctx).Info("Password updated", slog.Uint64("userID", uint64(user.ID)))

	return nil
}

// ListUsers returns users matching the admin listing filter.
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.UserWithRating, error) {
	filter := repository.UserFilter{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		SortBy:  input.SortBy,
		Order:   input.Order,
	}

	if input.Role != "" {
		role := entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.NewValidationError(domainerrors.FieldError{
				Field:   "role",
				Message: "Invalid role",
			})
		}
		filter.Role = role
	}

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SearchUsers returns users whose name contains the given fragment.
func (srv *userService) SearchUsers(ctx context.Context, name string) ([]*entity.UserWithRating, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "name",
			Message: "Name parameter is required",
		})
	}

	users, err := srv.userRepo.List(ctx, repository.UserFilter{Name: name})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return users, nil
}

// GetUser returns one user, decorated with the average rating across their
// stores when they are a store owner.
func (srv *userService) GetUser(ctx context.Context, id uint) (*entity.UserWithRating, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get user failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	result := &entity.UserWithRating{User: *user}
	if user.Role == entity.RoleStoreOwner {
		avg, err := srv.ratingRepo.AverageForOwner(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute owner rating")
		}
		result.Rating = &avg
	}

	return result, nil
}

// CreateUser creates an account with an explicit role (admin operation).
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleNormalUser
	}
	if !role.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "role",
			Message: "Invalid role",
		})
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Creating user", slog.String("email", email), slog.Any("role", role))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during user creation", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during user creation")
	}

	newUser := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailExists.WrapMessage("user creation failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user creation transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}

	return newUser, nil
}

// DeleteUser removes a user and everything hanging off it: ratings they
// authored and, for store owners, their stores plus all ratings on those
// stores. The whole cascade is one transaction.
func (srv *userService) DeleteUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user deletion failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if user.Role == entity.RoleAdmin {
		adminCount, err := srv.userRepo.CountByRole(ctx, entity.RoleAdmin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count admins")
		}
		if adminCount <= 1 {
			return nil, domainerrors.ErrLastAdmin.WrapMessage("user deletion refused")
		}
	}

	srv.log(ctx).Info("Deleting user", slog.Uint64("userID", uint64(id)), slog.Any("role", user.Role))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		storeRepo := repoFactory.StoreRepo()
		ratingRepo := repoFactory.RatingRepo()

		if user.Role == entity.RoleStoreOwner {
			if err := ratingRepo.DeleteByOwnerStores(ctx, id); err != nil {
				return errors.Wrap(err, "failed to delete ratings on owned stores")
			}
			if err := storeRepo.DeleteByOwnerID(ctx, id); err != nil {
				return errors.Wrap(err, "failed to delete owned stores")
			}
		}

		if err := ratingRepo.DeleteByUserID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete authored ratings")
		}

		return userRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user deletion transaction", slog.Uint64("userID", uint64(id)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User deleted", slog.Uint64("userID", uint64(id)))

	return user, nil
}

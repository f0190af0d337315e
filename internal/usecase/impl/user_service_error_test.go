package impl

import (
	"context"
	"testing"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	mockRepo "ratehub/internal/mocks/repository"
	"ratehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestUserService_Register_EmailExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Aarav Mehta Kumar",
		Email:    "aarav@example.com",
		Password: "Password1!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, domainerrors.ErrEmailExists.WrapMessage("user registration failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().
			FindByEmail(ctx, input.Email).
			Return(&entity.User{ID: 1, Email: input.Email}, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailExists))
}

func TestUserService_Register_HashError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Aarav Mehta Kumar",
		Email:    "aarav@example.com",
		Password: "Password1!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "Password1!",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "aarav@example.com", PasswordHash: "stored_hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "aarav@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("WrongPass1!", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "aarav@example.com",
		Password: "WrongPass1!",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_UpdatePassword_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
		Email:           "ghost@example.com",
		CurrentPassword: "OldPass1!",
		NewPassword:     "NewPass1!",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdatePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "aarav@example.com", PasswordHash: "old_hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "aarav@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("WrongPass1!", "old_hash").Return(false)

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
		Email:           "aarav@example.com",
		CurrentPassword: "WrongPass1!",
		NewPassword:     "NewPass1!",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_UpdatePassword_SamePassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "aarav@example.com", PasswordHash: "old_hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "aarav@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("SamePass1!", "old_hash").Return(true).Times(2)

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
		Email:           "aarav@example.com",
		CurrentPassword: "SamePass1!",
		NewPassword:     "SamePass1!",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSamePassword))
}

func TestUserService_ListUsers_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	users, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{Role: "superuser"})

	assert.Error(t, err)
	assert.Nil(t, users)

	var validationErr *domainerrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestUserService_SearchUsers_EmptyName(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	users, err := fx.service.SearchUsers(ctx, "   ")

	assert.Error(t, err)
	assert.Nil(t, users)

	var validationErr *domainerrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.GetUser(ctx, 404)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     "Deepak Nair Menon",
		Email:    "deepak@example.com",
		Password: "Password1!",
		Role:     entity.Role("superuser"),
	})

	assert.Error(t, err)
	assert.Nil(t, user)

	var validationErr *domainerrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestUserService_CreateUser_EmailExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Deepak Nair Menon",
		Email:    "deepak@example.com",
		Password: "Password1!",
		Role:     entity.RoleNormalUser,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, domainerrors.ErrEmailExists.WrapMessage("user creation failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().
			FindByEmail(ctx, input.Email).
			Return(&entity.User{ID: 2, Email: input.Email}, nil)
	})

	user, err := fx.service.CreateUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailExists))
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrUserNotFound)

	deleted, err := fx.service.DeleteUser(ctx, 404)

	assert.Error(t, err)
	assert.Nil(t, deleted)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_DeleteUser_LastAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(admin, nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RoleAdmin).Return(int64(1), nil)

	deleted, err := fx.service.DeleteUser(ctx, 1)

	assert.Error(t, err)
	assert.Nil(t, deleted)
	assert.True(t, errors.Is(err, domainerrors.ErrLastAdmin))
}

func TestUserService_DeleteUser_CascadeError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 11, Role: entity.RoleStoreOwner}

	fx.userRepo.EXPECT().FindByID(ctx, uint(11)).Return(owner, nil)

	fx.onExecute(ctx, errors.New("db error"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)

		mockRatingRepo.EXPECT().DeleteByOwnerStores(ctx, uint(11)).Return(errors.New("db error"))
	})

	deleted, err := fx.service.DeleteUser(ctx, 11)

	assert.Error(t, err)
	assert.Nil(t, deleted)
	assert.Contains(t, err.Error(), "failed to execute user deletion transaction")
}

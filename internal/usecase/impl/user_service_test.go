package impl

import (
	"context"
	"testing"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
	mockRepo "ratehub/internal/mocks/repository"
	mockSvc "ratehub/internal/mocks/service"
	"ratehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t            *testing.T
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	ratingRepo   *mockRepo.MockRatingRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(
		txManager,
		userRepo,
		ratingRepo,
		hasher,
		tokenService,
		newDiscardLogger(),
	)

	return userServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		ratingRepo:   ratingRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// onExecute stubs the transaction manager: it runs the transactional closure
// against a factory configured by setup, then makes Execute return returnErr.
func (f userServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Aarav Mehta Kumar",
		Email:    "Aarav@Example.com",
		Password: "Password1!",
		Address:  "12 MG Road, Bengaluru",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().
			FindByEmail(ctx, "aarav@example.com").
			Return(nil, repository.ErrUserNotFound)

		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = 42
			}).
			Return(nil)
	})

	fx.tokenService.EXPECT().
		Generate(mock.AnythingOfType("*entity.User")).
		Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, "aarav@example.com", output.User.Email)
	assert.Equal(t, entity.RoleNormalUser, output.User.Role)
	assert.Equal(t, uint(42), output.User.ID)
}

func TestUserService_Register_ForcesNormalUserRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Aarav Mehta Kumar",
		Email:    "aarav@example.com",
		Password: "Password1!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	var created *entity.User
	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().
			FindByEmail(ctx, input.Email).
			Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				created = user
			}).
			Return(nil)
	})

	fx.tokenService.EXPECT().
		Generate(mock.AnythingOfType("*entity.User")).
		Return("signed_token", nil)

	_, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleNormalUser, created.Role)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           7,
		Email:        "aarav@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RoleNormalUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "aarav@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password1!", "stored_hash").Return(true)
	fx.tokenService.EXPECT().Generate(user).Return("signed_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "  Aarav@Example.com ",
		Password: "Password1!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestUserService_UpdatePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           7,
		Email:        "aarav@example.com",
		PasswordHash: "old_hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "aarav@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("OldPass1!", "old_hash").Return(true)
	fx.hasher.EXPECT().Check("NewPass1!", "old_hash").Return(false)
	fx.hasher.EXPECT().Hash("NewPass1!").Return("new_hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "new_hash", updated.PasswordHash)
		}).
		Return(nil)

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{
		Email:           "aarav@example.com",
		CurrentPassword: "OldPass1!",
		NewPassword:     "NewPass1!",
	})

	require.NoError(t, err)
}

func TestUserService_ListUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	avg := 4.2
	expected := []*entity.UserWithRating{
		{User: entity.User{ID: 1, Name: "Bhavna Sharma Rao", Role: entity.RoleStoreOwner}, Rating: &avg},
		{User: entity.User{ID: 2, Name: "Chetan Prasad Iyer", Role: entity.RoleNormalUser}},
	}

	fx.userRepo.EXPECT().
		List(ctx, repository.UserFilter{Role: entity.RoleStoreOwner, SortBy: "name", Order: "asc"}).
		Return(expected, nil)

	users, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{
		Role:   "store_owner",
		SortBy: "name",
		Order:  "asc",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_SearchUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.UserWithRating{
		{User: entity.User{ID: 1, Name: "Bhavna Sharma Rao"}},
	}

	fx.userRepo.EXPECT().
		List(ctx, repository.UserFilter{Name: "Bhavna"}).
		Return(expected, nil)

	users, err := fx.service.SearchUsers(ctx, "  Bhavna ")

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_GetUser_DecoratesStoreOwner(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 3, Name: "Bhavna Sharma Rao", Role: entity.RoleStoreOwner}

	fx.userRepo.EXPECT().FindByID(ctx, uint(3)).Return(owner, nil)
	fx.ratingRepo.EXPECT().AverageForOwner(ctx, uint(3)).Return(4.5, nil)

	result, err := fx.service.GetUser(ctx, 3)

	require.NoError(t, err)
	require.NotNil(t, result.Rating)
	assert.InDelta(t, 4.5, *result.Rating, 0.001)
}

func TestUserService_GetUser_NormalUserHasNoRating(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 4, Name: "Chetan Prasad Iyer", Role: entity.RoleNormalUser}

	fx.userRepo.EXPECT().FindByID(ctx, uint(4)).Return(user, nil)

	result, err := fx.service.GetUser(ctx, 4)

	require.NoError(t, err)
	assert.Nil(t, result.Rating)
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Deepak Nair Menon",
		Email:    "deepak@example.com",
		Password: "Password1!",
		Role:     entity.RoleStoreOwner,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().
			FindByEmail(ctx, input.Email).
			Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(nil)
	})

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, user.Role)
	assert.Equal(t, "deepak@example.com", user.Email)
}

func TestUserService_CreateUser_DefaultsRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Deepak Nair Menon",
		Email:    "deepak@example.com",
		Password: "Password1!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().
			FindByEmail(ctx, input.Email).
			Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(nil)
	})

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleNormalUser, user.Role)
}

func TestUserService_DeleteUser_NormalUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 9, Role: entity.RoleNormalUser}

	fx.userRepo.EXPECT().FindByID(ctx, uint(9)).Return(user, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)

		mockRatingRepo.EXPECT().DeleteByUserID(ctx, uint(9)).Return(nil)
		mockUserRepo.EXPECT().Delete(ctx, uint(9)).Return(nil)
	})

	deleted, err := fx.service.DeleteUser(ctx, 9)

	require.NoError(t, err)
	assert.Equal(t, user, deleted)
}

func TestUserService_DeleteUser_StoreOwnerCascades(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 11, Role: entity.RoleStoreOwner}

	fx.userRepo.EXPECT().FindByID(ctx, uint(11)).Return(owner, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)

		mockRatingRepo.EXPECT().DeleteByOwnerStores(ctx, uint(11)).Return(nil)
		mockStoreRepo.EXPECT().DeleteByOwnerID(ctx, uint(11)).Return(nil)
		mockRatingRepo.EXPECT().DeleteByUserID(ctx, uint(11)).Return(nil)
		mockUserRepo.EXPECT().Delete(ctx, uint(11)).Return(nil)
	})

	deleted, err := fx.service.DeleteUser(ctx, 11)

	require.NoError(t, err)
	assert.Equal(t, owner, deleted)
}

func TestUserService_DeleteUser_SecondAdminAllowed(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(admin, nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RoleAdmin).Return(int64(2), nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)
		factory.EXPECT().RatingRepo().Return(mockRatingRepo)

		mockRatingRepo.EXPECT().DeleteByUserID(ctx, uint(1)).Return(nil)
		mockUserRepo.EXPECT().Delete(ctx, uint(1)).Return(nil)
	})

	deleted, err := fx.service.DeleteUser(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, admin, deleted)
}

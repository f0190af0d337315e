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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	t          *testing.T
	service    usecase.StoreUsecase
	txManager  *mockRepo.MockTransactionManager
	storeRepo  *mockRepo.MockStoreRepository
	userRepo   *mockRepo.MockUserRepository
	ratingRepo *mockRepo.MockRatingRepository
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)

	service := NewStoreService(txManager, storeRepo, userRepo, ratingRepo, newDiscardLogger())

	return storeServiceFixtures{
		t:          t,
		service:    service,
		txManager:  txManager,
		storeRepo:  storeRepo,
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
	}
}

func (f storeServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestStoreService_ListStores_AdminSeesAggregatesOnly(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	stores := []*entity.StoreWithStats{
		{Store: entity.Store{ID: 1, Name: "Fresh Mart Grocery"}, OverallRating: 4.2, TotalRatings: 5},
	}

	fx.storeRepo.EXPECT().List(ctx, repository.StoreFilter{}).Return(stores, nil)

	views, err := fx.service.ListStores(ctx, &entity.Principal{ID: 1, Role: entity.RoleAdmin}, &usecase.ListStoresInput{})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.InDelta(t, 4.2, views[0].OverallRating, 0.001)
	assert.Nil(t, views[0].UserSubmittedRating)
}

func TestStoreService_ListStores_NormalUserSeesOwnRating(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	stores := []*entity.StoreWithStats{
		{Store: entity.Store{ID: 1, Name: "Fresh Mart Grocery"}, OverallRating: 4.2, TotalRatings: 5},
		{Store: entity.Store{ID: 2, Name: "City Light Books"}, OverallRating: 3.0, TotalRatings: 2},
	}

	fx.storeRepo.EXPECT().List(ctx, repository.StoreFilter{}).Return(stores, nil)
	fx.ratingRepo.EXPECT().
		FindByUserAndStore(ctx, uint(7), uint(1)).
		Return(&entity.Rating{ID: 10, UserID: 7, StoreID: 1, Rating: 4}, nil)
	fx.ratingRepo.EXPECT().
		FindByUserAndStore(ctx, uint(7), uint(2)).
		Return(nil, repository.ErrRatingNotFound)

	views, err := fx.service.ListStores(ctx, &entity.Principal{ID: 7, Role: entity.RoleNormalUser}, &usecase.ListStoresInput{})

	require.NoError(t, err)
	require.Len(t, views, 2)
	require.NotNil(t, views[0].UserSubmittedRating)
	assert.Equal(t, 4, *views[0].UserSubmittedRating)
	assert.Nil(t, views[1].UserSubmittedRating)
}

func TestStoreService_ListStores_PassesFilter(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()

	fx.storeRepo.EXPECT().
		List(ctx, repository.StoreFilter{Search: "mart"}).
		Return([]*entity.StoreWithStats{}, nil)

	views, err := fx.service.ListStores(ctx, &entity.Principal{ID: 1, Role: entity.RoleAdmin}, &usecase.ListStoresInput{Search: "mart"})

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestStoreService_CreateStore_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 3, Role: entity.RoleStoreOwner}

	fx.userRepo.EXPECT().FindByID(ctx, uint(3)).Return(owner, nil)
	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(ctx context.Context, store *entity.Store) {
			store.ID = 5
		}).
		Return(nil)

	store, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:    "Fresh Mart Grocery",
		Email:   "Contact@FreshMart.com",
		Address: "44 Market Street",
		OwnerID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), store.ID)
	assert.Equal(t, "contact@freshmart.com", store.Email)
	assert.Equal(t, uint(3), store.OwnerID)
}

func TestStoreService_CreateStore_OwnerMissing(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrUserNotFound)

	store, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:    "Fresh Mart Grocery",
		Email:   "contact@freshmart.com",
		OwnerID: 404,
	})

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOwner))
}

func TestStoreService_CreateStore_OwnerWrongRole(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, uint(7)).
		Return(&entity.User{ID: 7, Role: entity.RoleNormalUser}, nil)

	store, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:    "Fresh Mart Grocery",
		Email:   "contact@freshmart.com",
		OwnerID: 7,
	})

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOwner))
}

func TestStoreService_CreateStore_DuplicateEmail(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 3, Role: entity.RoleStoreOwner}

	fx.userRepo.EXPECT().FindByID(ctx, uint(3)).Return(owner, nil)
	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(domainerrors.ErrStoreEmailExists.WrapMessage("store creation failed"))

	store, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:    "Fresh Mart Grocery",
		Email:   "contact@freshmart.com",
		OwnerID: 3,
	})

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreEmailExists))
}

func TestStoreService_DeleteStore_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	store := &entity.Store{ID: 5, Name: "Fresh Mart Grocery"}

	fx.storeRepo.EXPECT().FindByID(ctx, uint(5)).Return(store, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockStoreRepo := mockRepo.NewMockStoreRepository(t)
		mockRatingRepo := mockRepo.NewMockRatingRepository(t)

		factory.EXPECT().RatingRepo().Return(mockRatingRepo)
		factory.EXPECT().StoreRepo().Return(mockStoreRepo)

		mockRatingRepo.EXPECT().DeleteByStoreID(ctx, uint(5)).Return(nil)
		mockStoreRepo.EXPECT().Delete(ctx, uint(5)).Return(nil)
	})

	deleted, err := fx.service.DeleteStore(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, store, deleted)
}

func TestStoreService_DeleteStore_NotFound(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrStoreNotFound)

	deleted, err := fx.service.DeleteStore(ctx, 404)

	assert.Error(t, err)
	assert.Nil(t, deleted)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestStoreService_GetMyStore_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	expected := &entity.StoreWithStats{
		Store:         entity.Store{ID: 5, Name: "Fresh Mart Grocery", OwnerID: 3},
		OverallRating: 4.0,
		TotalRatings:  8,
	}

	fx.storeRepo.EXPECT().FindByOwnerID(ctx, uint(3)).Return(expected, nil)

	store, err := fx.service.GetMyStore(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, expected, store)
}

func TestStoreService_GetMyStore_NoStore(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByOwnerID(ctx, uint(3)).Return(nil, repository.ErrStoreNotFound)

	store, err := fx.service.GetMyStore(ctx, 3)

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestStoreService_ListMyStoreRatings_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	expected := []*entity.StoreRatingEntry{
		{Rating: 4, UserName: "Chetan Prasad Iyer", UserEmail: "chetan@example.com"},
	}

	fx.ratingRepo.EXPECT().ListForOwner(ctx, uint(3)).Return(expected, nil)

	entries, err := fx.service.ListMyStoreRatings(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestStoreService_ListStoreOwners_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	avg := 4.5
	fx.userRepo.EXPECT().
		List(ctx, repository.UserFilter{Role: entity.RoleStoreOwner}).
		Return([]*entity.UserWithRating{
			{User: entity.User{ID: 3, Name: "Bhavna Sharma Rao", Role: entity.RoleStoreOwner}, Rating: &avg},
		}, nil)

	owners, err := fx.service.ListStoreOwners(ctx)

	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, uint(3), owners[0].ID)
	assert.Equal(t, entity.RoleStoreOwner, owners[0].Role)
}

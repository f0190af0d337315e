package impl

import (
	"context"
	"log/slog"

	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	ratingRepo repository.RatingRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
		logger:     logger,
	}
}

// GetDashboard returns the platform totals shown on the admin dashboard.
func (srv *adminService) GetDashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalStores, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	totalRatings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &usecase.DashboardStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

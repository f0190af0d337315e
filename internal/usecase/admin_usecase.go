package usecase

import "context"

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

// AdminUsecase defines the interface for admin-only platform operations.
type AdminUsecase interface {
	GetDashboard(ctx context.Context) (*DashboardStats, error)
}

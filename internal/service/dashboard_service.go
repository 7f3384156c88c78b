package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

const recentActivityLimit = 10

type dashboardRepository interface {
	DashboardCounts(ctx context.Context) (*models.DashboardCounts, error)
	PendingApprovals(ctx context.Context) (*models.PendingApprovals, error)
	RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}

// DashboardService assembles the admin dashboard. Stats are computed on
// every call so the dashboard always reflects the live store.
type DashboardService struct {
	repo   dashboardRepository
	logger *zap.Logger
}

// NewDashboardService constructs a DashboardService instance.
func NewDashboardService(repo dashboardRepository, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, logger: logger}
}

// Stats returns the dashboard totals, pending approval breakdown, and
// recent activity feed.
func (s *DashboardService) Stats(ctx context.Context) (*dto.DashboardResponse, error) {
	counts, err := s.repo.DashboardCounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dashboard counts")
	}

	approvals, err := s.repo.PendingApprovals(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load pending approvals")
	}

	activity, err := s.repo.RecentActivity(ctx, recentActivityLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent activity")
	}
	if activity == nil {
		activity = []models.ActivityEntry{}
	}

	return &dto.DashboardResponse{
		TotalUsers:       counts.TotalUsers,
		TotalPosts:       counts.TotalPosts,
		TotalDownloads:   counts.TotalDownloads,
		PendingApprovals: *approvals,
		RecentActivity:   activity,
	}, nil
}

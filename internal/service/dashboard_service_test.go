package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

type dashboardRepoStub struct {
	counts    models.DashboardCounts
	approvals models.PendingApprovals
	activity  []models.ActivityEntry
	limitSeen int
}

func (s *dashboardRepoStub) DashboardCounts(ctx context.Context) (*models.DashboardCounts, error) {
	counts := s.counts
	return &counts, nil
}

func (s *dashboardRepoStub) PendingApprovals(ctx context.Context) (*models.PendingApprovals, error) {
	approvals := s.approvals
	return &approvals, nil
}

func (s *dashboardRepoStub) RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	s.limitSeen = limit
	return s.activity, nil
}

func TestDashboardServiceStats(t *testing.T) {
	repo := &dashboardRepoStub{
		counts:    models.DashboardCounts{TotalUsers: 120, TotalPosts: 45, TotalDownloads: 310},
		approvals: models.PendingApprovals{Total: 7, Feedback: 3, SectionExchange: 2, SectionRequests: 2},
		activity: []models.ActivityEntry{
			{Type: "feedback", Description: "New feedback: Library hours", Timestamp: time.Now()},
		},
	}
	svc := NewDashboardService(repo, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, stats.TotalUsers)
	assert.Equal(t, 45, stats.TotalPosts)
	assert.Equal(t, 310, stats.TotalDownloads)
	assert.Equal(t, 7, stats.PendingApprovals.Total)
	assert.Equal(t, 10, repo.limitSeen)
	require.Len(t, stats.RecentActivity, 1)
}

func TestDashboardServiceStatsEmptyActivity(t *testing.T) {
	svc := NewDashboardService(&dashboardRepoStub{}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, stats.RecentActivity)
	assert.Empty(t, stats.RecentActivity)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

type analyticsRepoStub struct {
	growth     []models.UserGrowthPoint
	categories []models.CategoryCount
	ratio      models.LostFoundRatio
	top        []models.TopResource

	sinceSeen time.Time
	limitSeen int
}

func (s *analyticsRepoStub) UserGrowth(ctx context.Context, since time.Time) ([]models.UserGrowthPoint, error) {
	s.sinceSeen = since
	return s.growth, nil
}

func (s *analyticsRepoStub) ListingsByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	return s.categories, nil
}

func (s *analyticsRepoStub) LostFoundRatio(ctx context.Context) (*models.LostFoundRatio, error) {
	ratio := s.ratio
	return &ratio, nil
}

func (s *analyticsRepoStub) TopResources(ctx context.Context, limit int) ([]models.TopResource, error) {
	s.limitSeen = limit
	return s.top, nil
}

func TestAnalyticsServiceZeroFillsGrowth(t *testing.T) {
	pinned := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)
	repo := &analyticsRepoStub{
		growth: []models.UserGrowthPoint{
			{Date: "2026-08-01", Count: 3},
			{Date: "2026-08-15", Count: 1},
		},
		ratio: models.LostFoundRatio{Lost: 4, Found: 2},
	}
	svc := NewAnalyticsService(repo, nil)
	svc.now = func() time.Time { return pinned }

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	require.Len(t, analytics.UserGrowth, 30)
	assert.Equal(t, "2026-08-01", analytics.UserGrowth[0].Date)
	assert.Equal(t, 3, analytics.UserGrowth[0].Count)
	assert.Equal(t, "2026-08-02", analytics.UserGrowth[1].Date)
	assert.Zero(t, analytics.UserGrowth[1].Count)
	assert.Equal(t, "2026-08-15", analytics.UserGrowth[14].Date)
	assert.Equal(t, 1, analytics.UserGrowth[14].Count)
	assert.Equal(t, "2026-08-30", analytics.UserGrowth[29].Date)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), repo.sinceSeen)
}

func TestAnalyticsServiceTopResourcesLimit(t *testing.T) {
	repo := &analyticsRepoStub{
		top: []models.TopResource{
			{ID: "res-1", Title: "Past papers", CourseCode: "CSE 2215", DownloadCount: 90},
		},
	}
	svc := NewAnalyticsService(repo, nil)

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, repo.limitSeen)
	require.Len(t, analytics.TopResources, 1)
	assert.Equal(t, "res-1", analytics.TopResources[0].ID)
}

func TestAnalyticsServiceEmptySlicesNotNil(t *testing.T) {
	svc := NewAnalyticsService(&analyticsRepoStub{}, nil)

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, analytics.ListingsByCategory)
	assert.NotNil(t, analytics.TopResources)
	assert.NotEmpty(t, analytics.UserGrowth)
}

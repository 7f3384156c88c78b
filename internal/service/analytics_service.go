package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

const (
	userGrowthDays    = 30
	topResourcesLimit = 5
	dateLayout        = "2006-01-02"
)

type analyticsRepository interface {
	UserGrowth(ctx context.Context, since time.Time) ([]models.UserGrowthPoint, error)
	ListingsByCategory(ctx context.Context) ([]models.CategoryCount, error)
	LostFoundRatio(ctx context.Context) (*models.LostFoundRatio, error)
	TopResources(ctx context.Context, limit int) ([]models.TopResource, error)
}

// AnalyticsService computes the admin analytics view. Results are never
// cached; callers always see the current store.
type AnalyticsService struct {
	repo   analyticsRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewAnalyticsService constructs an AnalyticsService instance.
func NewAnalyticsService(repo analyticsRepository, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{repo: repo, logger: logger, now: time.Now}
}

// Analytics returns the platform analytics payload. User growth covers the
// trailing 30 days and carries an explicit zero for days with no signups.
func (s *AnalyticsService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	now := s.now().UTC()
	windowStart := now.AddDate(0, 0, -(userGrowthDays - 1)).Truncate(24 * time.Hour)

	growth, err := s.repo.UserGrowth(ctx, windowStart)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user growth")
	}

	categories, err := s.repo.ListingsByCategory(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load listing categories")
	}
	if categories == nil {
		categories = []models.CategoryCount{}
	}

	ratio, err := s.repo.LostFoundRatio(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lost and found ratio")
	}

	top, err := s.repo.TopResources(ctx, topResourcesLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load top resources")
	}
	if top == nil {
		top = []models.TopResource{}
	}

	return &dto.AnalyticsResponse{
		UserGrowth:         zeroFillGrowth(growth, windowStart, now),
		ListingsByCategory: categories,
		LostFoundRatio:     *ratio,
		TopResources:       top,
	}, nil
}

// zeroFillGrowth expands sparse per-day counts into a contiguous series from
// windowStart through today.
func zeroFillGrowth(points []models.UserGrowthPoint, windowStart, now time.Time) []models.UserGrowthPoint {
	counts := make(map[string]int, len(points))
	for _, point := range points {
		counts[point.Date] = point.Count
	}

	filled := make([]models.UserGrowthPoint, 0, userGrowthDays)
	for day := windowStart; !day.After(now); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)
		filled = append(filled, models.UserGrowthPoint{Date: date, Count: counts[date]})
	}
	return filled
}

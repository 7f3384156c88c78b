package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

// AnalyticsRepository issues the aggregation queries behind the admin
// dashboard and analytics views. Every call hits the database; these numbers
// are never cached.
type AnalyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) DashboardCounts(ctx context.Context) (*models.DashboardCounts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM lost_found_posts WHERE status IN ('lost', 'found'))
				+ (SELECT COUNT(*) FROM marketplace_listings WHERE status = 'active')
				+ (SELECT COUNT(*) FROM feedback_posts WHERE status = 'approved') AS total_posts,
			(SELECT COALESCE(SUM(download_count), 0) FROM resources WHERE status = 'active') AS total_downloads`

	var counts models.DashboardCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &counts, nil
}

func (r *AnalyticsRepository) PendingApprovals(ctx context.Context) (*models.PendingApprovals, error) {
	const query = `
		SELECT
			feedback + section_exchange + section_requests AS total,
			feedback, section_exchange, section_requests
		FROM (
			SELECT
				(SELECT COUNT(*) FROM feedback_posts WHERE status = 'pending') AS feedback,
				(SELECT COUNT(*) FROM section_exchanges WHERE status = 'active') AS section_exchange,
				(SELECT COUNT(*) FROM section_requests WHERE status = 'pending') AS section_requests
		) q`

	var approvals models.PendingApprovals
	if err := r.db.GetContext(ctx, &approvals, query); err != nil {
		return nil, fmt.Errorf("pending approvals: %w", err)
	}
	return &approvals, nil
}

// RecentActivity returns the newest events across the platform, merged from
// the individual content tables.
func (r *AnalyticsRepository) RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	const query = `
		SELECT type, description, timestamp FROM (
			SELECT 'user_registered' AS type, 'New user: ' || full_name AS description, created_at AS timestamp
			FROM users
			UNION ALL
			SELECT 'resource_request', 'Resource requested: ' || resource_name, created_at
			FROM resource_requests
			UNION ALL
			SELECT 'lost_found_post', 'Lost & found: ' || title, created_at
			FROM lost_found_posts
			UNION ALL
			SELECT 'marketplace_listing', 'Listing: ' || title, created_at
			FROM marketplace_listings
			UNION ALL
			SELECT 'feedback_post', 'Feedback: ' || title, created_at
			FROM feedback_posts
		) activity
		ORDER BY timestamp DESC
		LIMIT $1`

	var entries []models.ActivityEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return entries, nil
}

// UserGrowth buckets registrations by calendar day since the given time.
// Days with no registrations are absent from the result; the service layer
// zero-fills the window.
func (r *AnalyticsRepository) UserGrowth(ctx context.Context, since time.Time) ([]models.UserGrowthPoint, error) {
	const query = `
		SELECT TO_CHAR(created_at::date, 'YYYY-MM-DD') AS date, COUNT(*) AS count
		FROM users
		WHERE created_at >= $1
		GROUP BY created_at::date
		ORDER BY created_at::date ASC`

	var points []models.UserGrowthPoint
	if err := r.db.SelectContext(ctx, &points, query, since); err != nil {
		return nil, fmt.Errorf("user growth: %w", err)
	}
	return points, nil
}

func (r *AnalyticsRepository) ListingsByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	const query = `
		SELECT category, COUNT(*) AS count
		FROM marketplace_listings
		WHERE status = 'active'
		GROUP BY category
		ORDER BY count DESC, category ASC`

	var counts []models.CategoryCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("listings by category: %w", err)
	}
	return counts, nil
}

func (r *AnalyticsRepository) LostFoundRatio(ctx context.Context) (*models.LostFoundRatio, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE post_type = 'lost') AS lost,
			COUNT(*) FILTER (WHERE post_type = 'found') AS found
		FROM lost_found_posts
		WHERE status <> 'removed'`

	var ratio models.LostFoundRatio
	if err := r.db.GetContext(ctx, &ratio, query); err != nil {
		return nil, fmt.Errorf("lost found ratio: %w", err)
	}
	return &ratio, nil
}

// TopResources ranks resources by downloads. Ties break on id so the list is
// stable between calls.
func (r *AnalyticsRepository) TopResources(ctx context.Context, limit int) ([]models.TopResource, error) {
	const query = `
		SELECT r.id, r.title, c.code AS course_code, r.download_count
		FROM resources r
		JOIN courses c ON c.id = r.course_id
		WHERE r.status = 'active'
		ORDER BY r.download_count DESC, r.id ASC
		LIMIT $1`

	var resources []models.TopResource
	if err := r.db.SelectContext(ctx, &resources, query, limit); err != nil {
		return nil, fmt.Errorf("top resources: %w", err)
	}
	return resources, nil
}

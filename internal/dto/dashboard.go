package dto

import "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"

// DashboardResponse is the admin dashboard payload.
type DashboardResponse struct {
	TotalUsers       int                     `json:"total_users"`
	TotalPosts       int                     `json:"total_posts"`
	TotalDownloads   int                     `json:"total_downloads"`
	PendingApprovals models.PendingApprovals `json:"pending_approvals"`
	RecentActivity   []models.ActivityEntry  `json:"recent_activity"`
}

// AnalyticsResponse is the admin analytics payload. UserGrowth covers the
// trailing 30 days with zero-filled gaps.
type AnalyticsResponse struct {
	UserGrowth         []models.UserGrowthPoint `json:"user_growth"`
	ListingsByCategory []models.CategoryCount   `json:"listings_by_category"`
	LostFoundRatio     models.LostFoundRatio    `json:"lost_found_ratio"`
	TopResources       []models.TopResource     `json:"top_resources"`
}

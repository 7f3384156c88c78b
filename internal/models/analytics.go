package models

import "time"

// PendingApprovals breaks down moderation queues awaiting admin action.
type PendingApprovals struct {
	Total           int `db:"total" json:"total"`
	Feedback        int `db:"feedback" json:"feedback"`
	SectionExchange int `db:"section_exchange" json:"section_exchange"`
	SectionRequests int `db:"section_requests" json:"section_requests"`
}

// ActivityEntry is one row of the recent-activity feed, newest first.
type ActivityEntry struct {
	Type        string    `db:"type" json:"type"`
	Description string    `db:"description" json:"description"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

// DashboardCounts carries the totals shown on the admin dashboard.
type DashboardCounts struct {
	TotalUsers     int `db:"total_users"`
	TotalPosts     int `db:"total_posts"`
	TotalDownloads int `db:"total_downloads"`
}

// UserGrowthPoint is a date-bucketed registration count.
type UserGrowthPoint struct {
	Date  string `db:"date" json:"date"`
	Count int    `db:"count" json:"count"`
}

// CategoryCount aggregates marketplace listings by category.
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"count" json:"count"`
}

// LostFoundRatio counts lost reports against found reports.
type LostFoundRatio struct {
	Lost  int `db:"lost" json:"lost"`
	Found int `db:"found" json:"found"`
}

// TopResource ranks a resource by download volume.
type TopResource struct {
	ID            string `db:"id" json:"id"`
	Title         string `db:"title" json:"title"`
	CourseCode    string `db:"course_code" json:"course_code"`
	DownloadCount int    `db:"download_count" json:"download_count"`
}

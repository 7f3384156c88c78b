package models

import "time"

// ContentType identifies one of the moderated tables unified by the admin view.
type ContentType string

const (
	ContentTypeLostFound       ContentType = "lost_found"
	ContentTypeMarketplace     ContentType = "marketplace"
	ContentTypeFeedback        ContentType = "feedback"
	ContentTypeSectionExchange ContentType = "section_exchange"
	ContentTypeSectionRequest  ContentType = "section_request"
)

// ContentTypes lists every moderated type in a stable order.
var ContentTypes = []ContentType{
	ContentTypeLostFound,
	ContentTypeMarketplace,
	ContentTypeFeedback,
	ContentTypeSectionExchange,
	ContentTypeSectionRequest,
}

// DeletionType reports which policy a delete applied.
type DeletionType string

const (
	DeletionSoft DeletionType = "soft"
	DeletionHard DeletionType = "hard"
)

// ModeratedContentItem is the normalized shape the moderation view presents
// for every content type.
type ModeratedContentItem struct {
	ContentType ContentType `db:"content_type" json:"content_type"`
	ID          string      `db:"id" json:"id"`
	Title       string      `db:"title" json:"title"`
	Content     string      `db:"content" json:"content"`
	AuthorName  string      `db:"author_name" json:"author_name"`
	Status      string      `db:"status" json:"status"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

// ContentFilter scopes moderation listing queries. Type and Status accept
// "all"; Status values are translated per type against that type's own
// status vocabulary.
type ContentFilter struct {
	Type   string
	Status string
	Search string
	SortBy string
	Limit  int
	Offset int
}

// LostFoundType distinguishes lost reports from found reports.
type LostFoundType string

const (
	LostFoundTypeLost  LostFoundType = "lost"
	LostFoundTypeFound LostFoundType = "found"
)

// LostFoundStatus enumerates the lost-and-found lifecycle.
type LostFoundStatus string

const (
	LostFoundStatusLost    LostFoundStatus = "lost"
	LostFoundStatusFound   LostFoundStatus = "found"
	LostFoundStatusClaimed LostFoundStatus = "claimed"
	LostFoundStatusRemoved LostFoundStatus = "removed"
)

// LostFoundPost is a lost-and-found report. Deletion policy: soft.
type LostFoundPost struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"user_id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Location    *string         `db:"location" json:"location,omitempty"`
	PostType    LostFoundType   `db:"post_type" json:"post_type"`
	Status      LostFoundStatus `db:"status" json:"status"`
	ExpiresAt   *time.Time      `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// ListingStatus enumerates marketplace listing states.
type ListingStatus string

const (
	ListingStatusActive ListingStatus = "active"
	ListingStatusSold   ListingStatus = "sold"
)

// MarketplaceListing is a for-sale post. Deletion policy: hard, cascading
// to listing_images rows.
type MarketplaceListing struct {
	ID          string        `db:"id" json:"id"`
	UserID      string        `db:"user_id" json:"user_id"`
	Title       string        `db:"title" json:"title"`
	Description string        `db:"description" json:"description"`
	Category    string        `db:"category" json:"category"`
	Price       float64       `db:"price" json:"price"`
	Status      ListingStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// FeedbackStatus enumerates moderated feedback states.
type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "pending"
	FeedbackStatusApproved FeedbackStatus = "approved"
	FeedbackStatusRejected FeedbackStatus = "rejected"
	FeedbackStatusDeleted  FeedbackStatus = "deleted"
)

// FeedbackPost is a moderated feedback entry, optionally tied to a course.
// Deletion policy: soft.
type FeedbackPost struct {
	ID        string         `db:"id" json:"id"`
	UserID    string         `db:"user_id" json:"user_id"`
	CourseID  *string        `db:"course_id" json:"course_id,omitempty"`
	Title     string         `db:"title" json:"title"`
	Content   string         `db:"content" json:"content"`
	Rating    *int           `db:"rating" json:"rating,omitempty"`
	Status    FeedbackStatus `db:"status" json:"status"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

// ContentRepository provides database access for community content: lost and
// found posts, marketplace listings and moderated feedback.
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository creates a new instance of ContentRepository.
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// CreateLostFound inserts a lost-and-found post. Lost reports start in the
// lost state, found reports in the found state.
func (r *ContentRepository) CreateLostFound(ctx context.Context, post *models.LostFoundPost) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now
	if post.Status == "" {
		post.Status = models.LostFoundStatus(post.PostType)
	}
	const query = `INSERT INTO lost_found_posts (id, user_id, title, description, location, post_type, status, expires_at, created_at, updated_at) VALUES (:id, :user_id, :title, :description, :location, :post_type, :status, :expires_at, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("create lost found post: %w", err)
	}
	return nil
}

// ListLostFound returns unexpired, non-removed posts, newest first.
func (r *ContentRepository) ListLostFound(ctx context.Context) ([]models.LostFoundPost, error) {
	const query = `SELECT id, user_id, title, description, location, post_type, status, expires_at, created_at, updated_at FROM lost_found_posts WHERE status <> 'removed' ORDER BY created_at DESC`
	var posts []models.LostFoundPost
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("list lost found posts: %w", err)
	}
	return posts, nil
}

// ExpireLostFound flips posts past their expiry to removed and reports how
// many rows changed. Used by the post-expiry batch tool.
func (r *ContentRepository) ExpireLostFound(ctx context.Context, now time.Time) (int64, error) {
	const query = `UPDATE lost_found_posts SET status = 'removed', updated_at = $1 WHERE status <> 'removed' AND expires_at IS NOT NULL AND expires_at < $1`
	result, err := r.db.ExecContext(ctx, query, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("expire lost found posts: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expire lost found posts rows: %w", err)
	}
	return affected, nil
}

// CreateListing inserts a marketplace listing with active status.
func (r *ContentRepository) CreateListing(ctx context.Context, listing *models.MarketplaceListing) error {
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now
	if listing.Status == "" {
		listing.Status = models.ListingStatusActive
	}
	const query = `INSERT INTO marketplace_listings (id, user_id, title, description, category, price, status, created_at, updated_at) VALUES (:id, :user_id, :title, :description, :category, :price, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, listing); err != nil {
		return fmt.Errorf("create marketplace listing: %w", err)
	}
	return nil
}

// ListListings returns active listings, newest first.
func (r *ContentRepository) ListListings(ctx context.Context) ([]models.MarketplaceListing, error) {
	const query = `SELECT id, user_id, title, description, category, price, status, created_at, updated_at FROM marketplace_listings WHERE status = 'active' ORDER BY created_at DESC`
	var listings []models.MarketplaceListing
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("list marketplace listings: %w", err)
	}
	return listings, nil
}

// CreateFeedback inserts a feedback post with pending status.
func (r *ContentRepository) CreateFeedback(ctx context.Context, post *models.FeedbackPost) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now
	if post.Status == "" {
		post.Status = models.FeedbackStatusPending
	}
	const query = `INSERT INTO feedback_posts (id, user_id, course_id, title, content, rating, status, created_at, updated_at) VALUES (:id, :user_id, :course_id, :title, :content, :rating, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return fmt.Errorf("create feedback post: %w", err)
	}
	return nil
}

// ListApprovedFeedback returns publicly visible feedback, newest first.
func (r *ContentRepository) ListApprovedFeedback(ctx context.Context) ([]models.FeedbackPost, error) {
	const query = `SELECT id, user_id, course_id, title, content, rating, status, created_at, updated_at FROM feedback_posts WHERE status = 'approved' ORDER BY created_at DESC`
	var posts []models.FeedbackPost
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("list approved feedback: %w", err)
	}
	return posts, nil
}

// UpdateFeedbackStatusFrom moves a pending feedback post to an admin
// decision, guarded against concurrent reviews.
func (r *ContentRepository) UpdateFeedbackStatusFrom(ctx context.Context, id string, to models.FeedbackStatus) (bool, error) {
	const query = `UPDATE feedback_posts SET status = $2, updated_at = $3 WHERE id = $1 AND status = 'pending'`
	result, err := r.db.ExecContext(ctx, query, id, string(to), time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("update feedback status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update feedback status rows: %w", err)
	}
	return affected > 0, nil
}

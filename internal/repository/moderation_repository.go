package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

// ContentQuery carries normalized moderation filters. Status holds the
// caller's vocabulary (all/active/pending/approved/rejected/deleted); each
// source translates it against its own status column.
type ContentQuery struct {
	Status string
	Search string
	Oldest bool
	Limit  int
}

// ContentSource is the per-type strategy the moderation view dispatches to.
type ContentSource interface {
	Fetch(ctx context.Context, q ContentQuery) ([]models.ModeratedContentItem, error)
	Count(ctx context.Context, q ContentQuery) (int, error)
	Delete(ctx context.Context, id string) (models.DeletionType, error)
}

// ModerationRepository unifies five structurally distinct tables behind one
// read/delete facade. The tables are intentionally not merged: each keeps its
// own domain columns, and this layer only normalizes the projection.
type ModerationRepository struct {
	sources map[models.ContentType]ContentSource
}

// NewModerationRepository wires one source per moderated content type.
func NewModerationRepository(db *sqlx.DB) *ModerationRepository {
	return &ModerationRepository{
		sources: map[models.ContentType]ContentSource{
			models.ContentTypeLostFound: &contentSource{
				db:          db,
				contentType: models.ContentTypeLostFound,
				projection:  `t.id, t.title, t.description AS content, u.full_name AS author_name, t.status, t.created_at`,
				from:        `FROM lost_found_posts t JOIN users u ON u.id = t.user_id`,
				searchExpr:  `(LOWER(t.title) LIKE %[1]s OR LOWER(t.description) LIKE %[1]s)`,
				statusExpr: map[string]string{
					"active":  `t.status IN ('lost', 'found')`,
					"deleted": `t.status = 'removed'`,
				},
				deletion: deletePolicy{
					kind: models.DeletionSoft,
					statements: []string{
						`UPDATE lost_found_posts SET status = 'removed', updated_at = NOW() WHERE id = $1 AND status <> 'removed'`,
					},
				},
			},
			models.ContentTypeMarketplace: &contentSource{
				db:          db,
				contentType: models.ContentTypeMarketplace,
				projection:  `t.id, t.title, t.description AS content, u.full_name AS author_name, t.status, t.created_at`,
				from:        `FROM marketplace_listings t JOIN users u ON u.id = t.user_id`,
				searchExpr:  `(LOWER(t.title) LIKE %[1]s OR LOWER(t.description) LIKE %[1]s)`,
				statusExpr: map[string]string{
					"active": `t.status = 'active'`,
				},
				deletion: deletePolicy{
					kind: models.DeletionHard,
					statements: []string{
						`DELETE FROM listing_images WHERE listing_id = $1`,
						`DELETE FROM marketplace_listings WHERE id = $1`,
					},
				},
			},
			models.ContentTypeFeedback: &contentSource{
				db:          db,
				contentType: models.ContentTypeFeedback,
				projection:  `t.id, t.title, t.content, u.full_name AS author_name, t.status, t.created_at`,
				from:        `FROM feedback_posts t JOIN users u ON u.id = t.user_id`,
				searchExpr:  `(LOWER(t.title) LIKE %[1]s OR LOWER(t.content) LIKE %[1]s)`,
				statusExpr: map[string]string{
					"active":   `t.status = 'approved'`,
					"pending":  `t.status = 'pending'`,
					"approved": `t.status = 'approved'`,
					"rejected": `t.status = 'rejected'`,
					"deleted":  `t.status = 'deleted'`,
				},
				deletion: deletePolicy{
					kind: models.DeletionSoft,
					statements: []string{
						`UPDATE feedback_posts SET status = 'deleted', updated_at = NOW() WHERE id = $1 AND status <> 'deleted'`,
					},
				},
			},
			models.ContentTypeSectionExchange: &contentSource{
				db:          db,
				contentType: models.ContentTypeSectionExchange,
				projection:  `t.id, c.code || ': ' || t.current_section || ' to ' || t.desired_section AS title, COALESCE(t.note, '') AS content, u.full_name AS author_name, t.status, t.created_at`,
				from:        `FROM section_exchanges t JOIN users u ON u.id = t.user_id JOIN courses c ON c.id = t.course_id`,
				searchExpr:  `(LOWER(c.code) LIKE %[1]s OR LOWER(COALESCE(t.note, '')) LIKE %[1]s)`,
				statusExpr: map[string]string{
					"active":  `t.status = 'active'`,
					"deleted": `t.status = 'deleted'`,
				},
				deletion: deletePolicy{
					kind: models.DeletionSoft,
					statements: []string{
						`UPDATE section_exchanges SET status = 'deleted', updated_at = NOW() WHERE id = $1 AND status <> 'deleted'`,
					},
				},
			},
			models.ContentTypeSectionRequest: &contentSource{
				db:          db,
				contentType: models.ContentTypeSectionRequest,
				projection:  `t.id, c.code || ' section ' || t.section AS title, COALESCE(t.reason, '') AS content, u.full_name AS author_name, t.status, t.created_at`,
				from:        `FROM section_requests t JOIN users u ON u.id = t.user_id JOIN courses c ON c.id = t.course_id`,
				searchExpr:  `(LOWER(c.code) LIKE %[1]s OR LOWER(COALESCE(t.reason, '')) LIKE %[1]s)`,
				statusExpr: map[string]string{
					"active":   `t.status IN ('pending', 'approved')`,
					"pending":  `t.status = 'pending'`,
					"approved": `t.status = 'approved'`,
					"rejected": `t.status = 'rejected'`,
				},
				deletion: deletePolicy{
					kind: models.DeletionHard,
					statements: []string{
						`DELETE FROM section_request_supports WHERE request_id = $1`,
						`DELETE FROM section_requests WHERE id = $1`,
					},
				},
			},
		},
	}
}

// Source returns the strategy for a content type.
func (r *ModerationRepository) Source(contentType models.ContentType) (ContentSource, bool) {
	source, ok := r.sources[contentType]
	return source, ok
}

type deletePolicy struct {
	kind models.DeletionType
	// statements run in order inside one transaction, each taking the id as
	// $1; the affected count of the final statement decides existence.
	statements []string
}

type contentSource struct {
	db          *sqlx.DB
	contentType models.ContentType
	projection  string
	from        string
	searchExpr  string
	statusExpr  map[string]string
	deletion    deletePolicy
}

// Fetch returns normalized items ordered by creation time. The window is
// bounded by q.Limit; offsets are applied by the caller after merging types.
func (s *contentSource) Fetch(ctx context.Context, q ContentQuery) ([]models.ModeratedContentItem, error) {
	where, args, ok := s.buildWhere(q)
	if !ok {
		return nil, nil
	}

	order := "DESC"
	if q.Oldest {
		order = "ASC"
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf("SELECT '%s' AS content_type, %s %s%s ORDER BY t.created_at %s, t.id ASC LIMIT %d",
		s.contentType, s.projection, s.from, where, order, limit)

	var items []models.ModeratedContentItem
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("fetch %s content: %w", s.contentType, err)
	}
	return items, nil
}

// Count returns the number of matching rows before any pagination.
func (s *contentSource) Count(ctx context.Context, q ContentQuery) (int, error) {
	where, args, ok := s.buildWhere(q)
	if !ok {
		return 0, nil
	}

	query := fmt.Sprintf("SELECT COUNT(*) %s%s", s.from, where)
	var total int
	if err := s.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count %s content: %w", s.contentType, err)
	}
	return total, nil
}

// Delete applies this type's deletion policy and reports which kind ran.
// Soft deletes guard on the current status, so repeating one reports
// sql.ErrNoRows rather than flipping the row again.
func (s *contentSource) Delete(ctx context.Context, id string) (models.DeletionType, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin %s delete tx: %w", s.contentType, err)
	}
	var affected int64
	for _, statement := range s.deletion.statements {
		result, err := tx.ExecContext(ctx, statement, id)
		if err != nil {
			_ = tx.Rollback()
			return "", fmt.Errorf("delete %s content: %w", s.contentType, err)
		}
		if affected, err = result.RowsAffected(); err != nil {
			_ = tx.Rollback()
			return "", fmt.Errorf("delete %s content rows: %w", s.contentType, err)
		}
	}
	if affected == 0 {
		_ = tx.Rollback()
		return "", sql.ErrNoRows
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit %s delete tx: %w", s.contentType, err)
	}
	return s.deletion.kind, nil
}

// buildWhere assembles predicates shared by Fetch and Count. The boolean is
// false when the requested status has no counterpart in this type's
// vocabulary, meaning the type contributes no rows.
func (s *contentSource) buildWhere(q ContentQuery) (string, []interface{}, bool) {
	var conditions []string
	var args []interface{}

	if q.Status != "" && q.Status != "all" {
		expr, ok := s.statusExpr[q.Status]
		if !ok {
			return "", nil, false
		}
		conditions = append(conditions, expr)
	}
	if q.Search != "" {
		placeholder := fmt.Sprintf("$%d", len(args)+1)
		conditions = append(conditions, fmt.Sprintf(s.searchExpr, placeholder))
		args = append(args, "%"+strings.ToLower(q.Search)+"%")
	}

	if len(conditions) == 0 {
		return "", args, true
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, true
}

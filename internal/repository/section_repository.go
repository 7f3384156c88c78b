package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

// SectionRepository provides database access to section requests and
// section exchange offers.
type SectionRepository struct {
	db *sqlx.DB
}

// NewSectionRepository creates a new instance of SectionRepository.
func NewSectionRepository(db *sqlx.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

const sectionRequestColumns = `id, user_id, course_id, section, reason, support_count, status, approved_by, created_at, updated_at`

// CreateRequest inserts a new section request with pending status.
func (r *SectionRepository) CreateRequest(ctx context.Context, request *models.SectionRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now
	if request.Status == "" {
		request.Status = models.SectionRequestStatusPending
	}
	const query = `INSERT INTO section_requests (id, user_id, course_id, section, reason, support_count, status, approved_by, created_at, updated_at) VALUES (:id, :user_id, :course_id, :section, :reason, :support_count, :status, :approved_by, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("create section request: %w", err)
	}
	return nil
}

// FindRequestByID returns a section request by identifier.
func (r *SectionRepository) FindRequestByID(ctx context.Context, id string) (*models.SectionRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM section_requests WHERE id = $1 LIMIT 1`, sectionRequestColumns)
	var request models.SectionRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find section request by id: %w", err)
	}
	return &request, nil
}

// ListRequests returns section requests, most supported first.
func (r *SectionRepository) ListRequests(ctx context.Context) ([]models.SectionRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM section_requests WHERE status <> 'rejected' ORDER BY support_count DESC, created_at DESC`, sectionRequestColumns)
	var requests []models.SectionRequest
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("list section requests: %w", err)
	}
	return requests, nil
}

// ListRequestsByUser returns the requests a user filed, newest first.
func (r *SectionRepository) ListRequestsByUser(ctx context.Context, userID string) ([]models.SectionRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM section_requests WHERE user_id = $1 ORDER BY created_at DESC`, sectionRequestColumns)
	var requests []models.SectionRequest
	if err := r.db.SelectContext(ctx, &requests, query, userID); err != nil {
		return nil, fmt.Errorf("list section requests by user: %w", err)
	}
	return requests, nil
}

// AddSupport records a backer and bumps support_count in one transaction.
// The unique (request_id, user_id) row keeps each student to one vote.
func (r *SectionRepository) AddSupport(ctx context.Context, requestID, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin support tx: %w", err)
	}
	const insertQuery = `INSERT INTO section_request_supports (id, request_id, user_id, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, insertQuery, uuid.NewString(), requestID, userID, time.Now().UTC()); err != nil {
		_ = tx.Rollback()
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrAlreadySupported
		}
		return fmt.Errorf("insert section request support: %w", err)
	}
	const updateQuery = `UPDATE section_requests SET support_count = support_count + 1, updated_at = $2 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, updateQuery, requestID, time.Now().UTC()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("increment support count: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit support tx: %w", err)
	}
	return nil
}

// ErrAlreadySupported signals a duplicate support vote.
var ErrAlreadySupported = fmt.Errorf("request already supported by user")

// UpdateRequestStatusFrom transitions a section request conditionally and
// reports whether a row changed.
func (r *SectionRepository) UpdateRequestStatusFrom(ctx context.Context, id string, from models.SectionRequestStatus, to models.SectionRequestStatus, approvedBy string) (bool, error) {
	const query = `UPDATE section_requests SET status = $2, approved_by = $3, updated_at = $4 WHERE id = $1 AND status = $5`
	result, err := r.db.ExecContext(ctx, query, id, string(to), approvedBy, time.Now().UTC(), string(from))
	if err != nil {
		return false, fmt.Errorf("update section request status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update section request status rows: %w", err)
	}
	return affected > 0, nil
}

const sectionExchangeColumns = `id, user_id, course_id, current_section, desired_section, note, status, created_at, updated_at`

// CreateExchange inserts a new exchange offer with active status.
func (r *SectionRepository) CreateExchange(ctx context.Context, exchange *models.SectionExchange) error {
	if exchange.ID == "" {
		exchange.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if exchange.CreatedAt.IsZero() {
		exchange.CreatedAt = now
	}
	exchange.UpdatedAt = now
	if exchange.Status == "" {
		exchange.Status = models.SectionExchangeStatusActive
	}
	const query = `INSERT INTO section_exchanges (id, user_id, course_id, current_section, desired_section, note, status, created_at, updated_at) VALUES (:id, :user_id, :course_id, :current_section, :desired_section, :note, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, exchange); err != nil {
		return fmt.Errorf("create section exchange: %w", err)
	}
	return nil
}

// ListExchanges returns active exchange offers, newest first.
func (r *SectionRepository) ListExchanges(ctx context.Context) ([]models.SectionExchange, error) {
	query := fmt.Sprintf(`SELECT %s FROM section_exchanges WHERE status = 'active' ORDER BY created_at DESC`, sectionExchangeColumns)
	var exchanges []models.SectionExchange
	if err := r.db.SelectContext(ctx, &exchanges, query); err != nil {
		return nil, fmt.Errorf("list section exchanges: %w", err)
	}
	return exchanges, nil
}

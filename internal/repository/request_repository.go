package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

// RequestRepository provides database access to resource requests.
type RequestRepository struct {
	db *sqlx.DB
}

// NewRequestRepository creates a new instance of RequestRepository.
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestColumns = `id, user_id, course_id, resource_name, description, status, fulfilled_resource_id, reviewed_by, created_at, updated_at`

// Create inserts a new resource request with pending status.
func (r *RequestRepository) Create(ctx context.Context, request *models.ResourceRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now
	if request.Status == "" {
		request.Status = models.RequestStatusPending
	}
	const query = `INSERT INTO resource_requests (id, user_id, course_id, resource_name, description, status, fulfilled_resource_id, reviewed_by, created_at, updated_at) VALUES (:id, :user_id, :course_id, :resource_name, :description, :status, :fulfilled_resource_id, :reviewed_by, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("create resource request: %w", err)
	}
	return nil
}

// FindByID returns a resource request by identifier.
func (r *RequestRepository) FindByID(ctx context.Context, id string) (*models.ResourceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM resource_requests WHERE id = $1 LIMIT 1`, requestColumns)
	var request models.ResourceRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find resource request by id: %w", err)
	}
	return &request, nil
}

// ListByUser returns all requests filed by the user, newest first.
func (r *RequestRepository) ListByUser(ctx context.Context, userID string) ([]models.ResourceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM resource_requests WHERE user_id = $1 ORDER BY created_at DESC, id ASC`, requestColumns)
	var requests []models.ResourceRequest
	if err := r.db.SelectContext(ctx, &requests, query, userID); err != nil {
		return nil, fmt.Errorf("list resource requests by user: %w", err)
	}
	return requests, nil
}

// UpdateStatusFrom transitions a request conditionally. The WHERE clause
// guards against lost updates when two admins act simultaneously; callers
// inspect the returned flag to surface an invalid-state outcome.
func (r *RequestRepository) UpdateStatusFrom(ctx context.Context, id string, from []models.RequestStatus, to models.RequestStatus, reviewedBy string) (bool, error) {
	if len(from) == 0 {
		return false, fmt.Errorf("update request status: no source states")
	}
	placeholders := make([]string, len(from))
	args := []interface{}{id, string(to), reviewedBy, time.Now().UTC()}
	for i, status := range from {
		placeholders[i] = fmt.Sprintf("$%d", len(args)+1)
		args = append(args, string(status))
	}
	query := fmt.Sprintf(`UPDATE resource_requests SET status = $2, reviewed_by = $3, updated_at = $4 WHERE id = $1 AND status IN (%s)`, strings.Join(placeholders, ","))
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update request status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update request status rows: %w", err)
	}
	return affected > 0, nil
}

// Fulfill marks a request uploaded and links the fulfilling resource,
// conditionally from pending or approved.
func (r *RequestRepository) Fulfill(ctx context.Context, id, resourceID, reviewedBy string) (bool, error) {
	const query = `UPDATE resource_requests SET status = 'uploaded', fulfilled_resource_id = $2, reviewed_by = $3, updated_at = $4 WHERE id = $1 AND status IN ('pending', 'approved')`
	result, err := r.db.ExecContext(ctx, query, id, resourceID, reviewedBy, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("fulfill resource request: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("fulfill resource request rows: %w", err)
	}
	return affected > 0, nil
}

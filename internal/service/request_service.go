package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

type requestRepository interface {
	Create(ctx context.Context, request *models.ResourceRequest) error
	FindByID(ctx context.Context, id string) (*models.ResourceRequest, error)
	ListByUser(ctx context.Context, userID string) ([]models.ResourceRequest, error)
	UpdateStatusFrom(ctx context.Context, id string, from []models.RequestStatus, to models.RequestStatus, reviewedBy string) (bool, error)
	Fulfill(ctx context.Context, id, resourceID, reviewedBy string) (bool, error)
}

type requestCourseRepository interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

type requestResourceRepository interface {
	FindByID(ctx context.Context, id string) (*models.Resource, error)
}

type requestAuditRepository interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// RequestService manages the resource request lifecycle:
// pending -> approved/rejected -> uploaded.
type RequestService struct {
	requests  requestRepository
	courses   requestCourseRepository
	resources requestResourceRepository
	audit     requestAuditRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRequestService constructs a RequestService instance.
func NewRequestService(requests requestRepository, courses requestCourseRepository, resources requestResourceRepository, audit requestAuditRepository, validate *validator.Validate, logger *zap.Logger) *RequestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RequestService{
		requests:  requests,
		courses:   courses,
		resources: resources,
		audit:     audit,
		validator: validate,
		logger:    logger,
	}
}

// Create files a new pending request. The referenced course must exist.
func (s *RequestService) Create(ctx context.Context, userID string, req dto.CreateResourceRequestRequest) (*models.ResourceRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request payload")
	}

	if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify course")
	}

	var description *string
	if req.Description != "" {
		description = &req.Description
	}
	request := &models.ResourceRequest{
		UserID:       userID,
		CourseID:     req.CourseID,
		ResourceName: req.ResourceName,
		Description:  description,
		Status:       models.RequestStatusPending,
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create request")
	}

	return request, nil
}

// ListMine returns the caller's own requests, newest first.
func (s *RequestService) ListMine(ctx context.Context, userID string) ([]models.ResourceRequest, error) {
	requests, err := s.requests.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list requests")
	}
	return requests, nil
}

// Review records an admin decision on a pending request. Only pending
// requests can be approved or rejected; the conditional update means a
// concurrent decision surfaces as an invalid transition rather than a
// silent overwrite.
func (s *RequestService) Review(ctx context.Context, requestID, adminID string, req dto.ReviewRequestRequest) (*models.ResourceRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid review payload")
	}

	if _, err := s.findRequest(ctx, requestID); err != nil {
		return nil, err
	}

	updated, err := s.requests.UpdateStatusFrom(ctx, requestID, []models.RequestStatus{models.RequestStatusPending}, models.RequestStatus(req.Status), adminID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update request")
	}
	if !updated {
		return nil, appErrors.Clone(appErrors.ErrInvalidState, "request is no longer pending")
	}

	s.recordReview(ctx, adminID, requestID, req.Status)

	return s.findRequest(ctx, requestID)
}

// Fulfill links an uploaded resource to a request and marks it uploaded.
// Pending and approved requests can both be fulfilled; a second fulfillment
// attempt fails as an invalid transition.
func (s *RequestService) Fulfill(ctx context.Context, requestID, adminID string, req dto.FulfillRequestRequest) (*models.ResourceRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid fulfillment payload")
	}

	if _, err := s.findRequest(ctx, requestID); err != nil {
		return nil, err
	}

	if _, err := s.resources.FindByID(ctx, req.ResourceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "resource does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify resource")
	}

	updated, err := s.requests.Fulfill(ctx, requestID, req.ResourceID, adminID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fulfill request")
	}
	if !updated {
		return nil, appErrors.Clone(appErrors.ErrInvalidState, "request cannot be fulfilled from its current status")
	}

	s.recordReview(ctx, adminID, requestID, string(models.RequestStatusUploaded))

	return s.findRequest(ctx, requestID)
}

func (s *RequestService) findRequest(ctx context.Context, id string) (*models.ResourceRequest, error) {
	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load request")
	}
	return request, nil
}

func (s *RequestService) recordReview(ctx context.Context, adminID, requestID, outcome string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     &adminID,
		Action:     models.AuditActionRequestReview,
		Resource:   "resource_request",
		ResourceID: &requestID,
		NewValues:  []byte(fmt.Sprintf(`{"status":%q}`, outcome)),
	}); err != nil {
		s.logger.Warn("failed to record review audit log", zap.Error(err))
	}
}

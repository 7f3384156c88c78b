package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/repository"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

type sectionRepository interface {
	CreateRequest(ctx context.Context, request *models.SectionRequest) error
	FindRequestByID(ctx context.Context, id string) (*models.SectionRequest, error)
	ListRequests(ctx context.Context) ([]models.SectionRequest, error)
	ListRequestsByUser(ctx context.Context, userID string) ([]models.SectionRequest, error)
	AddSupport(ctx context.Context, requestID, userID string) error
	UpdateRequestStatusFrom(ctx context.Context, id string, from, to models.SectionRequestStatus, approvedBy string) (bool, error)
	CreateExchange(ctx context.Context, exchange *models.SectionExchange) error
	ListExchanges(ctx context.Context) ([]models.SectionExchange, error)
}

type sectionCourseRepository interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

type sectionFeatureGate interface {
	IsEnabled(ctx context.Context, key string) bool
}

// SectionService manages section requests and exchange offers. Every
// operation re-reads the feature flag, so flipping section_issue_enabled
// takes effect on the next request without a restart.
type SectionService struct {
	sections  sectionRepository
	courses   sectionCourseRepository
	settings  sectionFeatureGate
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSectionService constructs a SectionService instance.
func NewSectionService(sections sectionRepository, courses sectionCourseRepository, settings sectionFeatureGate, validate *validator.Validate, logger *zap.Logger) *SectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SectionService{
		sections:  sections,
		courses:   courses,
		settings:  settings,
		validator: validate,
		logger:    logger,
	}
}

func (s *SectionService) gate(ctx context.Context) error {
	if !s.settings.IsEnabled(ctx, models.SettingSectionIssueEnabled) {
		return appErrors.Clone(appErrors.ErrFeatureDisabled, "section features are currently disabled")
	}
	return nil
}

// CreateRequest opens a pending section request for a course.
func (s *SectionService) CreateRequest(ctx context.Context, userID string, req dto.CreateSectionRequestRequest) (*models.SectionRequest, error) {
	if err := s.gate(ctx); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section request payload")
	}

	if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "course does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify course")
	}

	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}
	request := &models.SectionRequest{
		UserID:   userID,
		CourseID: req.CourseID,
		Section:  req.Section,
		Reason:   reason,
		Status:   models.SectionRequestStatusPending,
	}

	if err := s.sections.CreateRequest(ctx, request); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create section request")
	}
	return request, nil
}

// ListRequests returns open section requests ranked by support.
func (s *SectionService) ListRequests(ctx context.Context) ([]models.SectionRequest, error) {
	if err := s.gate(ctx); err != nil {
		return nil, err
	}
	requests, err := s.sections.ListRequests(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list section requests")
	}
	return requests, nil
}

// Support adds the caller's vote to a request. Each student votes once per
// request.
func (s *SectionService) Support(ctx context.Context, requestID, userID string) error {
	if err := s.gate(ctx); err != nil {
		return err
	}

	if _, err := s.sections.FindRequestByID(ctx, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "section request not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section request")
	}

	if err := s.sections.AddSupport(ctx, requestID, userID); err != nil {
		if errors.Is(err, repository.ErrAlreadySupported) {
			return appErrors.Clone(appErrors.ErrConflict, "request already supported")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record support")
	}
	return nil
}

// UpdateRequestStatus records an admin decision. Approve and reject apply to
// pending requests; completed applies to approved ones.
func (s *SectionService) UpdateRequestStatus(ctx context.Context, requestID, adminID string, req dto.UpdateSectionRequestStatusRequest) (*models.SectionRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}

	if _, err := s.sections.FindRequestByID(ctx, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "section request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section request")
	}

	from := models.SectionRequestStatusPending
	to := models.SectionRequestStatus(req.Status)
	if to == models.SectionRequestStatusCompleted {
		from = models.SectionRequestStatusApproved
	}

	updated, err := s.sections.UpdateRequestStatusFrom(ctx, requestID, from, to, adminID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update section request")
	}
	if !updated {
		return nil, appErrors.Clone(appErrors.ErrInvalidState, "section request cannot move to that status")
	}

	request, err := s.sections.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload section request")
	}
	return request, nil
}

// CreateExchange posts an active exchange offer.
func (s *SectionService) CreateExchange(ctx context.Context, userID string, req dto.CreateSectionExchangeRequest) (*models.SectionExchange, error) {
	if err := s.gate(ctx); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exchange payload")
	}
	if req.CurrentSection == req.DesiredSection {
		return nil, appErrors.Clone(appErrors.ErrValidation, "current and desired sections must differ")
	}

	if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "course does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify course")
	}

	var note *string
	if req.Note != "" {
		note = &req.Note
	}
	exchange := &models.SectionExchange{
		UserID:         userID,
		CourseID:       req.CourseID,
		CurrentSection: req.CurrentSection,
		DesiredSection: req.DesiredSection,
		Note:           note,
		Status:         models.SectionExchangeStatusActive,
	}

	if err := s.sections.CreateExchange(ctx, exchange); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create exchange offer")
	}
	return exchange, nil
}

// ListExchanges returns active exchange offers.
func (s *SectionService) ListExchanges(ctx context.Context) ([]models.SectionExchange, error) {
	if err := s.gate(ctx); err != nil {
		return nil, err
	}
	exchanges, err := s.sections.ListExchanges(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list exchange offers")
	}
	return exchanges, nil
}

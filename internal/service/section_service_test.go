package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/repository"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

type sectionRepoStub struct {
	requests  map[string]*models.SectionRequest
	exchanges []*models.SectionExchange
	supports  map[string]map[string]struct{}
}

func newSectionRepoStub() *sectionRepoStub {
	return &sectionRepoStub{
		requests: map[string]*models.SectionRequest{},
		supports: map[string]map[string]struct{}{},
	}
}

func (s *sectionRepoStub) CreateRequest(ctx context.Context, request *models.SectionRequest) error {
	if request.ID == "" {
		request.ID = "sr-stub"
	}
	s.requests[request.ID] = request
	return nil
}

func (s *sectionRepoStub) FindRequestByID(ctx context.Context, id string) (*models.SectionRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return request, nil
}

func (s *sectionRepoStub) ListRequests(ctx context.Context) ([]models.SectionRequest, error) {
	var requests []models.SectionRequest
	for _, request := range s.requests {
		requests = append(requests, *request)
	}
	return requests, nil
}

func (s *sectionRepoStub) ListRequestsByUser(ctx context.Context, userID string) ([]models.SectionRequest, error) {
	var requests []models.SectionRequest
	for _, request := range s.requests {
		if request.UserID == userID {
			requests = append(requests, *request)
		}
	}
	return requests, nil
}

func (s *sectionRepoStub) AddSupport(ctx context.Context, requestID, userID string) error {
	voters, ok := s.supports[requestID]
	if !ok {
		voters = map[string]struct{}{}
		s.supports[requestID] = voters
	}
	if _, voted := voters[userID]; voted {
		return repository.ErrAlreadySupported
	}
	voters[userID] = struct{}{}
	return nil
}

func (s *sectionRepoStub) UpdateRequestStatusFrom(ctx context.Context, id string, from, to models.SectionRequestStatus, approvedBy string) (bool, error) {
	request, ok := s.requests[id]
	if !ok || request.Status != from {
		return false, nil
	}
	request.Status = to
	request.ApprovedBy = &approvedBy
	return true, nil
}

func (s *sectionRepoStub) CreateExchange(ctx context.Context, exchange *models.SectionExchange) error {
	if exchange.ID == "" {
		exchange.ID = "ex-stub"
	}
	s.exchanges = append(s.exchanges, exchange)
	return nil
}

func (s *sectionRepoStub) ListExchanges(ctx context.Context) ([]models.SectionExchange, error) {
	var exchanges []models.SectionExchange
	for _, exchange := range s.exchanges {
		exchanges = append(exchanges, *exchange)
	}
	return exchanges, nil
}

type featureGateStub struct {
	enabled map[string]bool
}

func (s *featureGateStub) IsEnabled(ctx context.Context, key string) bool {
	return s.enabled[key]
}

func newSectionServiceForTest(enabled bool) (*SectionService, *sectionRepoStub) {
	sections := newSectionRepoStub()
	svc := NewSectionService(
		sections,
		&courseRepoStub{items: map[string]*models.Course{"course-1": {ID: "course-1", Code: "CSE 2215"}}},
		&featureGateStub{enabled: map[string]bool{models.SettingSectionIssueEnabled: enabled}},
		nil,
		nil,
	)
	return svc, sections
}

func TestSectionServiceGateDisabled(t *testing.T) {
	svc, _ := newSectionServiceForTest(false)
	ctx := context.Background()

	_, err := svc.CreateRequest(ctx, "user-1", dto.CreateSectionRequestRequest{CourseID: "course-1", Section: "B"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrFeatureDisabled.Code, appErr.Code)

	_, err = svc.ListRequests(ctx)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrFeatureDisabled.Code, appErr.Code)

	_, err = svc.ListExchanges(ctx)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrFeatureDisabled.Code, appErr.Code)
}

func TestSectionServiceAdminDecisionBypassesGate(t *testing.T) {
	svc, sections := newSectionServiceForTest(false)
	sections.requests["sr-1"] = &models.SectionRequest{ID: "sr-1", Status: models.SectionRequestStatusPending}

	request, err := svc.UpdateRequestStatus(context.Background(), "sr-1", "admin-1", dto.UpdateSectionRequestStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, models.SectionRequestStatusApproved, request.Status)
}

func TestSectionServiceCreateRequest(t *testing.T) {
	svc, sections := newSectionServiceForTest(true)

	request, err := svc.CreateRequest(context.Background(), "user-1", dto.CreateSectionRequestRequest{
		CourseID: "course-1",
		Section:  "C",
		Reason:   "clashes with lab",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SectionRequestStatusPending, request.Status)
	assert.Len(t, sections.requests, 1)
}

func TestSectionServiceSupportOnce(t *testing.T) {
	svc, sections := newSectionServiceForTest(true)
	sections.requests["sr-1"] = &models.SectionRequest{ID: "sr-1", Status: models.SectionRequestStatusPending}
	ctx := context.Background()

	require.NoError(t, svc.Support(ctx, "sr-1", "user-1"))

	err := svc.Support(ctx, "sr-1", "user-1")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestSectionServiceCompletedRequiresApproved(t *testing.T) {
	svc, sections := newSectionServiceForTest(true)
	sections.requests["sr-1"] = &models.SectionRequest{ID: "sr-1", Status: models.SectionRequestStatusPending}
	ctx := context.Background()

	_, err := svc.UpdateRequestStatus(ctx, "sr-1", "admin-1", dto.UpdateSectionRequestStatusRequest{Status: "completed"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErr.Code)

	_, err = svc.UpdateRequestStatus(ctx, "sr-1", "admin-1", dto.UpdateSectionRequestStatusRequest{Status: "approved"})
	require.NoError(t, err)

	request, err := svc.UpdateRequestStatus(ctx, "sr-1", "admin-1", dto.UpdateSectionRequestStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, models.SectionRequestStatusCompleted, request.Status)
}

func TestSectionServiceCreateExchangeSameSection(t *testing.T) {
	svc, _ := newSectionServiceForTest(true)

	_, err := svc.CreateExchange(context.Background(), "user-1", dto.CreateSectionExchangeRequest{
		CourseID:       "course-1",
		CurrentSection: "A",
		DesiredSection: "A",
	})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestSectionServiceCreateExchange(t *testing.T) {
	svc, sections := newSectionServiceForTest(true)

	exchange, err := svc.CreateExchange(context.Background(), "user-1", dto.CreateSectionExchangeRequest{
		CourseID:       "course-1",
		CurrentSection: "A",
		DesiredSection: "B",
		Note:           "morning classes only",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SectionExchangeStatusActive, exchange.Status)
	assert.Len(t, sections.exchanges, 1)
}

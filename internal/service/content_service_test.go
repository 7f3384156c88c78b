package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

type contentRepoStub struct {
	lostFound      []*models.LostFoundPost
	listings       []*models.MarketplaceListing
	feedback       map[string]*models.FeedbackPost
	moderateResult bool
}

func newContentRepoStub() *contentRepoStub {
	return &contentRepoStub{feedback: map[string]*models.FeedbackPost{}}
}

func (s *contentRepoStub) CreateLostFound(ctx context.Context, post *models.LostFoundPost) error {
	if post.ID == "" {
		post.ID = "lf-stub"
	}
	s.lostFound = append(s.lostFound, post)
	return nil
}

func (s *contentRepoStub) ListLostFound(ctx context.Context) ([]models.LostFoundPost, error) {
	var posts []models.LostFoundPost
	for _, post := range s.lostFound {
		posts = append(posts, *post)
	}
	return posts, nil
}

func (s *contentRepoStub) CreateListing(ctx context.Context, listing *models.MarketplaceListing) error {
	if listing.ID == "" {
		listing.ID = "ml-stub"
	}
	s.listings = append(s.listings, listing)
	return nil
}

func (s *contentRepoStub) ListListings(ctx context.Context) ([]models.MarketplaceListing, error) {
	var listings []models.MarketplaceListing
	for _, listing := range s.listings {
		listings = append(listings, *listing)
	}
	return listings, nil
}

func (s *contentRepoStub) CreateFeedback(ctx context.Context, post *models.FeedbackPost) error {
	if post.ID == "" {
		post.ID = "fb-stub"
	}
	s.feedback[post.ID] = post
	return nil
}

func (s *contentRepoStub) ListApprovedFeedback(ctx context.Context) ([]models.FeedbackPost, error) {
	var posts []models.FeedbackPost
	for _, post := range s.feedback {
		if post.Status == models.FeedbackStatusApproved {
			posts = append(posts, *post)
		}
	}
	return posts, nil
}

func (s *contentRepoStub) UpdateFeedbackStatusFrom(ctx context.Context, id string, to models.FeedbackStatus) (bool, error) {
	if !s.moderateResult {
		return false, nil
	}
	if post, ok := s.feedback[id]; ok {
		post.Status = to
	}
	return true, nil
}

type contentSettingsStub struct {
	enabled map[string]bool
	values  map[string]string
}

func (s *contentSettingsStub) IsEnabled(ctx context.Context, key string) bool {
	return s.enabled[key]
}

func (s *contentSettingsStub) Get(ctx context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", appErrors.Clone(appErrors.ErrNotFound, "setting not found")
	}
	return value, nil
}

func TestContentServiceCreateLostFoundSetsExpiry(t *testing.T) {
	content := newContentRepoStub()
	svc := NewContentService(content, &contentSettingsStub{
		values: map[string]string{models.SettingLostFoundExpiryDays: "30"},
	}, nil, nil)

	post, err := svc.CreateLostFound(context.Background(), "user-1", dto.CreateLostFoundRequest{
		Title:       "Black umbrella",
		Description: "left in room 401",
		PostType:    "lost",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LostFoundStatus("lost"), post.Status)
	require.NotNil(t, post.ExpiresAt)
	remaining := time.Until(*post.ExpiresAt)
	assert.InDelta(t, 30*24, remaining.Hours(), 1)
}

func TestContentServiceCreateLostFoundNoExpirySetting(t *testing.T) {
	content := newContentRepoStub()
	svc := NewContentService(content, &contentSettingsStub{values: map[string]string{}}, nil, nil)

	post, err := svc.CreateLostFound(context.Background(), "user-1", dto.CreateLostFoundRequest{
		Title:       "Calculator",
		Description: "found near cafeteria",
		PostType:    "found",
	})
	require.NoError(t, err)
	assert.Nil(t, post.ExpiresAt)
	assert.Equal(t, models.LostFoundStatus("found"), post.Status)
}

func TestContentServiceCreateListingDisabled(t *testing.T) {
	svc := NewContentService(newContentRepoStub(), &contentSettingsStub{enabled: map[string]bool{}}, nil, nil)

	_, err := svc.CreateListing(context.Background(), "user-1", dto.CreateListingRequest{
		Title:       "Used textbook",
		Description: "Discrete Math, 7th ed",
		Category:    "books",
		Price:       350,
	})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrFeatureDisabled.Code, appErr.Code)
}

func TestContentServiceCreateListing(t *testing.T) {
	content := newContentRepoStub()
	svc := NewContentService(content, &contentSettingsStub{
		enabled: map[string]bool{models.SettingMarketplaceEnabled: true},
	}, nil, nil)

	listing, err := svc.CreateListing(context.Background(), "user-1", dto.CreateListingRequest{
		Title:       "Used textbook",
		Description: "Discrete Math, 7th ed",
		Category:    "books",
		Price:       350,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusActive, listing.Status)
	assert.Len(t, content.listings, 1)
}

func TestContentServiceCreateFeedbackStartsPending(t *testing.T) {
	content := newContentRepoStub()
	svc := NewContentService(content, &contentSettingsStub{}, nil, nil)

	rating := 4
	post, err := svc.CreateFeedback(context.Background(), "user-1", dto.CreateFeedbackRequest{
		Title:   "More water filters",
		Content: "Second floor filter has been broken for a month",
		Rating:  &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackStatusPending, post.Status)
}

func TestContentServiceModerateFeedbackNotPending(t *testing.T) {
	content := newContentRepoStub()
	content.moderateResult = false
	svc := NewContentService(content, &contentSettingsStub{}, nil, nil)

	err := svc.ModerateFeedback(context.Background(), "fb-1", dto.UpdateFeedbackStatusRequest{Status: "approved"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErr.Code)
}

func TestContentServiceModerateFeedback(t *testing.T) {
	content := newContentRepoStub()
	content.moderateResult = true
	content.feedback["fb-1"] = &models.FeedbackPost{ID: "fb-1", Status: models.FeedbackStatusPending}
	svc := NewContentService(content, &contentSettingsStub{}, nil, nil)

	err := svc.ModerateFeedback(context.Background(), "fb-1", dto.UpdateFeedbackStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackStatusApproved, content.feedback["fb-1"].Status)
}

package service

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

type contentRepository interface {
	CreateLostFound(ctx context.Context, post *models.LostFoundPost) error
	ListLostFound(ctx context.Context) ([]models.LostFoundPost, error)
	CreateListing(ctx context.Context, listing *models.MarketplaceListing) error
	ListListings(ctx context.Context) ([]models.MarketplaceListing, error)
	CreateFeedback(ctx context.Context, post *models.FeedbackPost) error
	ListApprovedFeedback(ctx context.Context) ([]models.FeedbackPost, error)
	UpdateFeedbackStatusFrom(ctx context.Context, id string, to models.FeedbackStatus) (bool, error)
}

type contentSettings interface {
	IsEnabled(ctx context.Context, key string) bool
	Get(ctx context.Context, key string) (string, error)
}

// ContentService handles community posts: lost and found reports,
// marketplace listings, and moderated feedback.
type ContentService struct {
	content   contentRepository
	settings  contentSettings
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContentService constructs a ContentService instance.
func NewContentService(content contentRepository, settings contentSettings, validate *validator.Validate, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ContentService{content: content, settings: settings, validator: validate, logger: logger}
}

// CreateLostFound publishes a lost or found report. Expiry comes from the
// lost_found_expiry_days setting read at post time.
func (s *ContentService) CreateLostFound(ctx context.Context, userID string, req dto.CreateLostFoundRequest) (*models.LostFoundPost, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lost and found payload")
	}

	var location *string
	if req.Location != "" {
		location = &req.Location
	}

	post := &models.LostFoundPost{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    location,
		PostType:    models.LostFoundType(req.PostType),
		Status:      models.LostFoundStatus(req.PostType),
	}

	if days := s.expiryDays(ctx); days > 0 {
		expiresAt := time.Now().UTC().AddDate(0, 0, days)
		post.ExpiresAt = &expiresAt
	}

	if err := s.content.CreateLostFound(ctx, post); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create lost and found post")
	}
	return post, nil
}

// ListLostFound returns visible lost and found reports.
func (s *ContentService) ListLostFound(ctx context.Context) ([]models.LostFoundPost, error) {
	posts, err := s.content.ListLostFound(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lost and found posts")
	}
	return posts, nil
}

// CreateListing publishes a marketplace listing when the marketplace is
// enabled.
func (s *ContentService) CreateListing(ctx context.Context, userID string, req dto.CreateListingRequest) (*models.MarketplaceListing, error) {
	if !s.settings.IsEnabled(ctx, models.SettingMarketplaceEnabled) {
		return nil, appErrors.Clone(appErrors.ErrFeatureDisabled, "marketplace is currently disabled")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid listing payload")
	}

	listing := &models.MarketplaceListing{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Status:      models.ListingStatusActive,
	}

	if err := s.content.CreateListing(ctx, listing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create listing")
	}
	return listing, nil
}

// ListListings returns active marketplace listings.
func (s *ContentService) ListListings(ctx context.Context) ([]models.MarketplaceListing, error) {
	listings, err := s.content.ListListings(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list marketplace listings")
	}
	return listings, nil
}

// CreateFeedback submits a pending feedback post for moderation.
func (s *ContentService) CreateFeedback(ctx context.Context, userID string, req dto.CreateFeedbackRequest) (*models.FeedbackPost, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid feedback payload")
	}

	var courseID *string
	if req.CourseID != "" {
		courseID = &req.CourseID
	}
	post := &models.FeedbackPost{
		UserID:   userID,
		CourseID: courseID,
		Title:    req.Title,
		Content:  req.Content,
		Rating:   req.Rating,
		Status:   models.FeedbackStatusPending,
	}

	if err := s.content.CreateFeedback(ctx, post); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create feedback")
	}
	return post, nil
}

// ListApprovedFeedback returns feedback visible to the community.
func (s *ContentService) ListApprovedFeedback(ctx context.Context) ([]models.FeedbackPost, error) {
	posts, err := s.content.ListApprovedFeedback(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list feedback")
	}
	return posts, nil
}

// ModerateFeedback approves or rejects a pending feedback post. Only pending
// posts can change state.
func (s *ContentService) ModerateFeedback(ctx context.Context, id string, req dto.UpdateFeedbackStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid moderation payload")
	}

	updated, err := s.content.UpdateFeedbackStatusFrom(ctx, id, models.FeedbackStatus(req.Status))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to moderate feedback")
	}
	if !updated {
		return appErrors.Clone(appErrors.ErrInvalidState, "feedback is no longer pending")
	}
	return nil
}

func (s *ContentService) expiryDays(ctx context.Context) int {
	raw, err := s.settings.Get(ctx, models.SettingLostFoundExpiryDays)
	if err != nil {
		return 0
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return 0
	}
	return days
}

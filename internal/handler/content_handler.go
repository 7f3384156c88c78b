package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/response"
)

type contentService interface {
	CreateLostFound(ctx context.Context, userID string, req dto.CreateLostFoundRequest) (*models.LostFoundPost, error)
	ListLostFound(ctx context.Context) ([]models.LostFoundPost, error)
	CreateListing(ctx context.Context, userID string, req dto.CreateListingRequest) (*models.MarketplaceListing, error)
	ListListings(ctx context.Context) ([]models.MarketplaceListing, error)
	CreateFeedback(ctx context.Context, userID string, req dto.CreateFeedbackRequest) (*models.FeedbackPost, error)
	ListApprovedFeedback(ctx context.Context) ([]models.FeedbackPost, error)
	ModerateFeedback(ctx context.Context, id string, req dto.UpdateFeedbackStatusRequest) error
}

// ContentHandler exposes the community content endpoints.
type ContentHandler struct {
	service contentService
}

// NewContentHandler builds a new handler.
func NewContentHandler(service contentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// CreateLostFound godoc
// @Summary Report a lost or found item
// @Tags Community
// @Accept json
// @Produce json
// @Param payload body dto.CreateLostFoundRequest true "Report payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /community/lost-found [post]
func (h *ContentHandler) CreateLostFound(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateLostFoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid lost and found payload"))
		return
	}

	post, err := h.service.CreateLostFound(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// ListLostFound godoc
// @Summary List visible lost and found reports
// @Tags Community
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /community/lost-found [get]
func (h *ContentHandler) ListLostFound(c *gin.Context) {
	posts, err := h.service.ListLostFound(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, posts, nil)
}

// CreateListing godoc
// @Summary Publish a marketplace listing
// @Tags Community
// @Accept json
// @Produce json
// @Param payload body dto.CreateListingRequest true "Listing payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /community/marketplace [post]
func (h *ContentHandler) CreateListing(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid listing payload"))
		return
	}

	listing, err := h.service.CreateListing(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, listing)
}

// ListListings godoc
// @Summary List active marketplace listings
// @Tags Community
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /community/marketplace [get]
func (h *ContentHandler) ListListings(c *gin.Context) {
	listings, err := h.service.ListListings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, listings, nil)
}

// CreateFeedback godoc
// @Summary Submit feedback for moderation
// @Tags Community
// @Accept json
// @Produce json
// @Param payload body dto.CreateFeedbackRequest true "Feedback payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /community/feedback [post]
func (h *ContentHandler) CreateFeedback(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}

	post, err := h.service.CreateFeedback(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// ListFeedback godoc
// @Summary List approved feedback
// @Tags Community
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /community/feedback [get]
func (h *ContentHandler) ListFeedback(c *gin.Context) {
	posts, err := h.service.ListApprovedFeedback(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, posts, nil)
}

// ModerateFeedback godoc
// @Summary Approve or reject pending feedback
// @Tags Community
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param payload body dto.UpdateFeedbackStatusRequest true "Decision payload"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /admin/feedback/{id}/status [patch]
func (h *ContentHandler) ModerateFeedback(c *gin.Context) {
	var req dto.UpdateFeedbackStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid moderation payload"))
		return
	}

	if err := h.service.ModerateFeedback(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

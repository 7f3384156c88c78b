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

type sectionService interface {
	CreateRequest(ctx context.Context, userID string, req dto.CreateSectionRequestRequest) (*models.SectionRequest, error)
	ListRequests(ctx context.Context) ([]models.SectionRequest, error)
	Support(ctx context.Context, requestID, userID string) error
	UpdateRequestStatus(ctx context.Context, requestID, adminID string, req dto.UpdateSectionRequestStatusRequest) (*models.SectionRequest, error)
	CreateExchange(ctx context.Context, userID string, req dto.CreateSectionExchangeRequest) (*models.SectionExchange, error)
	ListExchanges(ctx context.Context) ([]models.SectionExchange, error)
}

// SectionHandler exposes section request and exchange endpoints.
type SectionHandler struct {
	service sectionService
}

// NewSectionHandler builds a new handler.
func NewSectionHandler(service sectionService) *SectionHandler {
	return &SectionHandler{service: service}
}

// CreateRequest godoc
// @Summary Open a section request
// @Tags Sections
// @Accept json
// @Produce json
// @Param payload body dto.CreateSectionRequestRequest true "Section request payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /sections/requests [post]
func (h *SectionHandler) CreateRequest(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateSectionRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid section request payload"))
		return
	}

	request, err := h.service.CreateRequest(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// ListRequests godoc
// @Summary List open section requests ranked by support
// @Tags Sections
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /sections/requests [get]
func (h *SectionHandler) ListRequests(c *gin.Context) {
	requests, err := h.service.ListRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, nil)
}

// Support godoc
// @Summary Back a section request
// @Tags Sections
// @Produce json
// @Param id path string true "Section request ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /sections/requests/{id}/support [post]
func (h *SectionHandler) Support(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Support(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateStatus godoc
// @Summary Decide a section request
// @Tags Sections
// @Accept json
// @Produce json
// @Param id path string true "Section request ID"
// @Param payload body dto.UpdateSectionRequestStatusRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/sections/requests/{id}/status [patch]
func (h *SectionHandler) UpdateStatus(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateSectionRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	request, err := h.service.UpdateRequestStatus(c.Request.Context(), c.Param("id"), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}

// CreateExchange godoc
// @Summary Post a section exchange offer
// @Tags Sections
// @Accept json
// @Produce json
// @Param payload body dto.CreateSectionExchangeRequest true "Exchange payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /sections/exchanges [post]
func (h *SectionHandler) CreateExchange(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateSectionExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid exchange payload"))
		return
	}

	exchange, err := h.service.CreateExchange(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exchange)
}

// ListExchanges godoc
// @Summary List active exchange offers
// @Tags Sections
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /sections/exchanges [get]
func (h *SectionHandler) ListExchanges(c *gin.Context) {
	exchanges, err := h.service.ListExchanges(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exchanges, nil)
}

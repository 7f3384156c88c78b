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

type requestService interface {
	Create(ctx context.Context, userID string, req dto.CreateResourceRequestRequest) (*models.ResourceRequest, error)
	ListMine(ctx context.Context, userID string) ([]models.ResourceRequest, error)
	Review(ctx context.Context, requestID, adminID string, req dto.ReviewRequestRequest) (*models.ResourceRequest, error)
	Fulfill(ctx context.Context, requestID, adminID string, req dto.FulfillRequestRequest) (*models.ResourceRequest, error)
}

// RequestHandler exposes resource request endpoints.
type RequestHandler struct {
	service requestService
}

// NewRequestHandler builds a new handler.
func NewRequestHandler(service requestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create godoc
// @Summary File a resource request
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.CreateResourceRequestRequest true "Request payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /resources/requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateResourceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid request payload"))
		return
	}

	request, err := h.service.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// ListMine godoc
// @Summary List the caller's resource requests
// @Tags Requests
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /resources/requests/my-requests [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	requests, err := h.service.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, nil)
}

// Review godoc
// @Summary Approve or reject a pending request
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body dto.ReviewRequestRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/requests/{id}/review [patch]
func (h *RequestHandler) Review(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.ReviewRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid review payload"))
		return
	}

	request, err := h.service.Review(c.Request.Context(), c.Param("id"), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}

// Fulfill godoc
// @Summary Mark a request uploaded, linking the fulfilling resource
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body dto.FulfillRequestRequest true "Fulfillment payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/requests/{id}/fulfill [patch]
func (h *RequestHandler) Fulfill(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.FulfillRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid fulfillment payload"))
		return
	}

	request, err := h.service.Fulfill(c.Request.Context(), c.Param("id"), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}

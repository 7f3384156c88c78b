package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/response"
)

type dashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardResponse, error)
}

type analyticsService interface {
	Analytics(ctx context.Context) (*dto.AnalyticsResponse, error)
}

// AdminHandler exposes the admin dashboard and analytics endpoints.
type AdminHandler struct {
	dashboard dashboardService
	analytics analyticsService
}

// NewAdminHandler builds a new handler.
func NewAdminHandler(dashboard dashboardService, analytics analyticsService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, analytics: analytics}
}

// Dashboard godoc
// @Summary Admin dashboard stats
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Analytics godoc
// @Summary Platform analytics
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/analytics [get]
func (h *AdminHandler) Analytics(c *gin.Context) {
	analytics, err := h.analytics.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, analytics, nil)
}

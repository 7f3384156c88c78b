package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/service"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/response"
)

type moderationService interface {
	List(ctx context.Context, filter models.ContentFilter) (*dto.ContentListResponse, error)
	Delete(ctx context.Context, contentType, contentID, adminID string) (*dto.DeleteContentResponse, error)
}

type exportService interface {
	ContentReport(ctx context.Context, filter models.ContentFilter, format service.ExportFormat) (*service.ExportResult, error)
}

type deletionMetricsRecorder interface {
	CountDeletion(contentType, deletionType string)
}

// ModerationHandler exposes the unified content moderation endpoints.
type ModerationHandler struct {
	service moderationService
	exports exportService
	metrics deletionMetricsRecorder
}

// NewModerationHandler builds a new handler.
func NewModerationHandler(svc moderationService, exports exportService, metrics deletionMetricsRecorder) *ModerationHandler {
	return &ModerationHandler{service: svc, exports: exports, metrics: metrics}
}

func contentFilterFromQuery(c *gin.Context) models.ContentFilter {
	sortBy := c.Query("sortBy")
	if sortBy == "" {
		// legacy alias
		sortBy = c.DefaultQuery("sort", "newest")
	}
	return models.ContentFilter{
		Type:   c.DefaultQuery("type", "all"),
		Status: c.DefaultQuery("status", "all"),
		Search: c.Query("search"),
		SortBy: sortBy,
		Limit:  queryInt(c, "limit", 20),
		Offset: queryInt(c, "offset", 0),
	}
}

// List godoc
// @Summary Unified content moderation view
// @Tags Moderation
// @Produce json
// @Param type query string false "Content type or all"
// @Param status query string false "Status filter or all"
// @Param search query string false "Search in title and content"
// @Param sortBy query string false "newest or oldest"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/content [get]
func (h *ModerationHandler) List(c *gin.Context) {
	filter := contentFilterFromQuery(c)

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, list, &models.Pagination{
		Limit:      filter.Limit,
		Offset:     filter.Offset,
		TotalCount: list.Total,
	})
}

// Delete godoc
// @Summary Delete one content item via its type's policy
// @Tags Moderation
// @Produce json
// @Param contentType path string true "Content type"
// @Param contentId path string true "Content ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/content/{contentType}/{contentId} [delete]
func (h *ModerationHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	result, err := h.service.Delete(c.Request.Context(), c.Param("contentType"), c.Param("contentId"), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CountDeletion(string(result.ContentType), string(result.DeletionType))
	}

	response.JSON(c, http.StatusOK, result, nil)
}

// Export godoc
// @Summary Export the moderation view as CSV or PDF
// @Tags Moderation
// @Produce octet-stream
// @Param format query string true "csv or pdf"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /admin/content/export [get]
func (h *ModerationHandler) Export(c *gin.Context) {
	filter := contentFilterFromQuery(c)
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))

	result, err := h.exports.ContentReport(c.Request.Context(), filter, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

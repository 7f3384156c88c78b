package handler

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/response"
)

type resourceService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListResources(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, int, error)
	DownloadLink(ctx context.Context, resourceID string) (*dto.DownloadLinkResponse, error)
	RedeemDownload(ctx context.Context, token string) (*os.File, *models.Resource, error)
}

type metricsRecorder interface {
	CountDownload()
}

// ResourceHandler exposes the course catalog and resource endpoints.
type ResourceHandler struct {
	service resourceService
	metrics metricsRecorder
}

// NewResourceHandler builds a new handler.
func NewResourceHandler(service resourceService, metrics metricsRecorder) *ResourceHandler {
	return &ResourceHandler{service: service, metrics: metrics}
}

// ListCourses godoc
// @Summary List the course catalog
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /resources/courses [get]
func (h *ResourceHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// ListResources godoc
// @Summary List active resources
// @Tags Resources
// @Produce json
// @Param course_id query string false "Filter by course"
// @Param search query string false "Search in title and description"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.Envelope
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	filter := models.ResourceFilter{
		CourseID: c.Query("course_id"),
		Search:   c.Query("search"),
		Limit:    queryInt(c, "limit", 20),
		Offset:   queryInt(c, "offset", 0),
	}

	resources, total, err := h.service.ListResources(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resources, &models.Pagination{
		Limit:      filter.Limit,
		Offset:     filter.Offset,
		TotalCount: total,
	})
}

// DownloadLink godoc
// @Summary Issue a signed download URL for a resource
// @Tags Resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /resources/{id}/download [get]
func (h *ResourceHandler) DownloadLink(c *gin.Context) {
	link, err := h.service.DownloadLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, link, nil)
}

// ServeFile godoc
// @Summary Redeem a signed download token for the file bytes
// @Tags Resources
// @Produce octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} binary
// @Router /resources/files/{token} [get]
func (h *ResourceHandler) ServeFile(c *gin.Context) {
	file, resource, err := h.service.RedeemDownload(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	if h.metrics != nil {
		h.metrics.CountDownload()
	}

	c.Header("Content-Disposition", `attachment; filename="`+resource.Title+`"`)
	c.DataFromReader(http.StatusOK, resource.FileSize, resource.MimeType, file, nil)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

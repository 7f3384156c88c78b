package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/response"
)

type resourceUploader interface {
	CreateResource(ctx context.Context, uploaderID *string, courseID, title, description, filename, mimeType string, size int64, content io.Reader) (*models.Resource, error)
}

// UploadHandler receives multipart resource uploads from admins.
type UploadHandler struct {
	service resourceUploader
}

// NewUploadHandler builds a new handler.
func NewUploadHandler(service resourceUploader) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload godoc
// @Summary Upload a resource file
// @Tags Resources
// @Accept multipart/form-data
// @Produce json
// @Param course_id formData string true "Course ID"
// @Param title formData string true "Resource title"
// @Param description formData string false "Resource description"
// @Param file formData file true "Resource file"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/resources [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "resource file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read uploaded file"))
		return
	}
	defer file.Close() //nolint:errcheck

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	uploaderID := claims.UserID
	resource, err := h.service.CreateResource(
		c.Request.Context(),
		&uploaderID,
		c.PostForm("course_id"),
		c.PostForm("title"),
		c.PostForm("description"),
		fileHeader.Filename,
		mimeType,
		fileHeader.Size,
		file,
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resource)
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/storage"
)

const courseCacheKey = "courses:all"

type resourceCourseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

type resourceRepository interface {
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, int, error)
	FindByID(ctx context.Context, id string) (*models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
	IncrementDownloadCount(ctx context.Context, id string) error
}

type resourceCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// ResourceCacheConfig controls the course catalog cache.
type ResourceCacheConfig struct {
	Enabled   bool
	CourseTTL time.Duration
}

// ResourceService serves the course catalog and resource files.
type ResourceService struct {
	courses   resourceCourseRepository
	resources resourceRepository
	cache     resourceCache
	signer    *storage.SignedURLSigner
	files     *storage.LocalStorage
	validator *validator.Validate
	logger    *zap.Logger
	cacheCfg  ResourceCacheConfig
}

// NewResourceService constructs a ResourceService instance.
func NewResourceService(courses resourceCourseRepository, resources resourceRepository, cache resourceCache, signer *storage.SignedURLSigner, files *storage.LocalStorage, validate *validator.Validate, logger *zap.Logger, cacheCfg ResourceCacheConfig) *ResourceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ResourceService{
		courses:   courses,
		resources: resources,
		cache:     cache,
		signer:    signer,
		files:     files,
		validator: validate,
		logger:    logger,
		cacheCfg:  cacheCfg,
	}
}

// ListCourses returns the course catalog, cached when the cache is enabled.
func (s *ResourceService) ListCourses(ctx context.Context) ([]models.Course, error) {
	if s.cacheCfg.Enabled && s.cache != nil {
		var cached []models.Course
		if err := s.cache.Get(ctx, courseCacheKey, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("course cache read failed", zap.Error(err))
		}
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	if s.cacheCfg.Enabled && s.cache != nil {
		if err := s.cache.Set(ctx, courseCacheKey, courses, s.cacheCfg.CourseTTL); err != nil {
			s.logger.Warn("course cache write failed", zap.Error(err))
		}
	}

	return courses, nil
}

// ListResources returns active resources matching the filter along with the
// total matching count.
func (s *ResourceService) ListResources(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, int, error) {
	resources, total, err := s.resources.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list resources")
	}
	return resources, total, nil
}

// GetResource loads a single resource by id.
func (s *ResourceService) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	resource, err := s.resources.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "resource not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load resource")
	}
	return resource, nil
}

// DownloadLink issues a signed, short-lived URL for fetching a resource file.
func (s *ResourceService) DownloadLink(ctx context.Context, resourceID string) (*dto.DownloadLinkResponse, error) {
	resource, err := s.GetResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if resource.Status != models.ResourceStatusActive {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "resource not found")
	}

	token, expiresAt, err := s.signer.Generate(resource.ID, resource.FilePath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download link")
	}

	return &dto.DownloadLinkResponse{
		URL:       "/resources/files/" + token,
		ExpiresAt: expiresAt,
	}, nil
}

// RedeemDownload validates a signed token, opens the file, and counts the
// download. The counter is bumped in the store so concurrent downloads never
// lose increments.
func (s *ResourceService) RedeemDownload(ctx context.Context, token string) (*os.File, *models.Resource, error) {
	resourceID, relPath, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid download token")
	}

	resource, err := s.GetResource(ctx, resourceID)
	if err != nil {
		return nil, nil, err
	}
	if resource.Status != models.ResourceStatusActive || resource.FilePath != relPath {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "resource not found")
	}

	file, err := s.files.Open(resource.FilePath)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open resource file")
	}

	if err := s.resources.IncrementDownloadCount(ctx, resource.ID); err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.logger.Warn("failed to count download", zap.String("resource_id", resource.ID), zap.Error(err))
	}

	return file, resource, nil
}

// CreateResource stores an uploaded file and its record. UploaderID may be
// nil for admin-seeded resources.
func (s *ResourceService) CreateResource(ctx context.Context, uploaderID *string, courseID, title, description, filename, mimeType string, size int64, content io.Reader) (*models.Resource, error) {
	if title == "" || filename == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "title and file are required")
	}

	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "course does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify course")
	}

	resourceID := uuid.NewString()
	relPath := filepath.Join(courseID, fmt.Sprintf("%s-%s", resourceID, filepath.Base(filename)))
	if _, err := s.files.SaveStream(relPath, content); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store resource file")
	}

	var desc *string
	if description != "" {
		desc = &description
	}
	resource := &models.Resource{
		ID:          resourceID,
		CourseID:    courseID,
		UploaderID:  uploaderID,
		Title:       title,
		Description: desc,
		FilePath:    relPath,
		FileSize:    size,
		MimeType:    mimeType,
		Status:      models.ResourceStatusActive,
	}

	if err := s.resources.Create(ctx, resource); err != nil {
		if removeErr := s.files.Delete(relPath); removeErr != nil {
			s.logger.Warn("failed to clean up orphaned resource file", zap.String("path", relPath), zap.Error(removeErr))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create resource")
	}

	return resource, nil
}

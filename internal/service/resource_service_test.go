package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/storage"
)

type resourceCourseRepoStub struct {
	courses   []models.Course
	listCalls int
}

func (s *resourceCourseRepoStub) List(ctx context.Context) ([]models.Course, error) {
	s.listCalls++
	return s.courses, nil
}

func (s *resourceCourseRepoStub) FindByID(ctx context.Context, id string) (*models.Course, error) {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return &s.courses[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

type resourceStoreStub struct {
	items      map[string]*models.Resource
	increments []string
}

func (s *resourceStoreStub) List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, int, error) {
	var resources []models.Resource
	for _, resource := range s.items {
		resources = append(resources, *resource)
	}
	return resources, len(resources), nil
}

func (s *resourceStoreStub) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	resource, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return resource, nil
}

func (s *resourceStoreStub) Create(ctx context.Context, resource *models.Resource) error {
	s.items[resource.ID] = resource
	return nil
}

func (s *resourceStoreStub) IncrementDownloadCount(ctx context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return sql.ErrNoRows
	}
	s.increments = append(s.increments, id)
	return nil
}

type courseCacheStub struct {
	cached []models.Course
	filled bool
	sets   int
}

func (s *courseCacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	if !s.filled {
		return appErrors.ErrCacheMiss
	}
	*dest.(*[]models.Course) = s.cached
	return nil
}

func (s *courseCacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s.cached = value.([]models.Course)
	s.filled = true
	s.sets++
	return nil
}

func newResourceServiceForTest(t *testing.T, cache resourceCache, cacheCfg ResourceCacheConfig) (*ResourceService, *resourceCourseRepoStub, *resourceStoreStub, *storage.LocalStorage) {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	courses := &resourceCourseRepoStub{courses: []models.Course{
		{ID: "course-1", Code: "CSE 2215", Title: "Data Structures"},
	}}
	resources := &resourceStoreStub{items: map[string]*models.Resource{}}
	signer := storage.NewSignedURLSigner("test-secret", 5*time.Minute)
	svc := NewResourceService(courses, resources, cache, signer, files, nil, nil, cacheCfg)
	return svc, courses, resources, files
}

func TestResourceServiceListCoursesCacheDisabled(t *testing.T) {
	cache := &courseCacheStub{}
	svc, courses, _, _ := newResourceServiceForTest(t, cache, ResourceCacheConfig{Enabled: false})
	ctx := context.Background()

	_, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	_, err = svc.ListCourses(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, courses.listCalls)
	assert.Zero(t, cache.sets)
}

func TestResourceServiceListCoursesCacheEnabled(t *testing.T) {
	cache := &courseCacheStub{}
	svc, courses, _, _ := newResourceServiceForTest(t, cache, ResourceCacheConfig{Enabled: true, CourseTTL: time.Minute})
	ctx := context.Background()

	first, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	second, err := svc.ListCourses(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, courses.listCalls)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first, second)
}

func TestResourceServiceDownloadRoundTrip(t *testing.T) {
	svc, _, resources, files := newResourceServiceForTest(t, nil, ResourceCacheConfig{})
	ctx := context.Background()

	relPath, err := files.Save("course-1/res-1-notes.pdf", []byte("pdf bytes"))
	require.NoError(t, err)
	resources.items["res-1"] = &models.Resource{
		ID:       "res-1",
		CourseID: "course-1",
		Title:    "Midterm notes",
		FilePath: relPath,
		FileSize: 9,
		MimeType: "application/pdf",
		Status:   models.ResourceStatusActive,
	}

	link, err := svc.DownloadLink(ctx, "res-1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link.URL, "/resources/files/"))
	assert.True(t, link.ExpiresAt.After(time.Now()))

	token := strings.TrimPrefix(link.URL, "/resources/files/")
	file, resource, err := svc.RedeemDownload(ctx, token)
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, "res-1", resource.ID)
	assert.Equal(t, []string{"res-1"}, resources.increments)
}

func TestResourceServiceRedeemTamperedToken(t *testing.T) {
	svc, _, resources, files := newResourceServiceForTest(t, nil, ResourceCacheConfig{})
	ctx := context.Background()

	relPath, err := files.Save("course-1/res-1-notes.pdf", []byte("pdf bytes"))
	require.NoError(t, err)
	resources.items["res-1"] = &models.Resource{
		ID:       "res-1",
		FilePath: relPath,
		Status:   models.ResourceStatusActive,
	}

	link, err := svc.DownloadLink(ctx, "res-1")
	require.NoError(t, err)
	token := strings.TrimPrefix(link.URL, "/resources/files/")

	parts := strings.Split(token, ".")
	parts[0] = "res-2"
	_, _, err = svc.RedeemDownload(ctx, strings.Join(parts, "."))
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestResourceServiceDownloadLinkInactiveResource(t *testing.T) {
	svc, _, resources, _ := newResourceServiceForTest(t, nil, ResourceCacheConfig{})
	resources.items["res-1"] = &models.Resource{ID: "res-1", Status: models.ResourceStatusRemoved}

	_, err := svc.DownloadLink(context.Background(), "res-1")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestResourceServiceCreateResource(t *testing.T) {
	svc, _, resources, files := newResourceServiceForTest(t, nil, ResourceCacheConfig{})
	ctx := context.Background()

	resource, err := svc.CreateResource(ctx, nil, "course-1", "Slides", "week 5", "slides.pdf", "application/pdf", 4, strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, models.ResourceStatusActive, resource.Status)
	assert.Contains(t, resource.FilePath, "course-1")
	assert.Contains(t, resource.FilePath, "slides.pdf")
	require.Len(t, resources.items, 1)

	file, err := files.Open(resource.FilePath)
	require.NoError(t, err)
	file.Close()
}

func TestResourceServiceCreateResourceUnknownCourse(t *testing.T) {
	svc, _, _, _ := newResourceServiceForTest(t, nil, ResourceCacheConfig{})

	_, err := svc.CreateResource(context.Background(), nil, "course-404", "Slides", "", "slides.pdf", "application/pdf", 4, strings.NewReader("data"))
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

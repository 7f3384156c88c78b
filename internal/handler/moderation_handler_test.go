package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/middleware"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/service"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

type moderationServiceStub struct {
	filterSeen models.ContentFilter
	list       *dto.ContentListResponse
	deleteResp *dto.DeleteContentResponse
	err        error
}

func (s *moderationServiceStub) List(ctx context.Context, filter models.ContentFilter) (*dto.ContentListResponse, error) {
	s.filterSeen = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *moderationServiceStub) Delete(ctx context.Context, contentType, contentID, adminID string) (*dto.DeleteContentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.deleteResp, nil
}

type exportServiceStub struct {
	result *service.ExportResult
	err    error
}

func (s *exportServiceStub) ContentReport(ctx context.Context, filter models.ContentFilter, format service.ExportFormat) (*service.ExportResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type deletionMetricsStub struct {
	counted [][2]string
}

func (s *deletionMetricsStub) CountDeletion(contentType, deletionType string) {
	s.counted = append(s.counted, [2]string{contentType, deletionType})
}

func adminClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin}
}

func withClaims(claims *models.JWTClaims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims != nil {
			c.Set(middleware.ContextUserKey, claims)
		}
		c.Next()
	}
}

func TestModerationHandlerListParsesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &moderationServiceStub{list: &dto.ContentListResponse{Items: []models.ModeratedContentItem{}, Total: 42}}
	h := NewModerationHandler(stub, nil, nil)

	router := gin.New()
	router.GET("/admin/content", h.List)

	req := httptest.NewRequest(http.MethodGet, "/admin/content?type=feedback&status=pending&search=wifi&sortBy=oldest&limit=10&offset=20", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ContentFilter{
		Type:   "feedback",
		Status: "pending",
		Search: "wifi",
		SortBy: "oldest",
		Limit:  10,
		Offset: 20,
	}, stub.filterSeen)

	var envelope struct {
		Success    bool               `json:"success"`
		Pagination *models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, 42, envelope.Pagination.TotalCount)
}

func TestModerationHandlerListDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &moderationServiceStub{list: &dto.ContentListResponse{Total: 0}}
	h := NewModerationHandler(stub, nil, nil)

	router := gin.New()
	router.GET("/admin/content", h.List)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/content", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "all", stub.filterSeen.Type)
	assert.Equal(t, "all", stub.filterSeen.Status)
	assert.Equal(t, "newest", stub.filterSeen.SortBy)
	assert.Equal(t, 20, stub.filterSeen.Limit)
	assert.Equal(t, 0, stub.filterSeen.Offset)
}

func TestModerationHandlerListSortAlias(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &moderationServiceStub{list: &dto.ContentListResponse{Total: 0}}
	h := NewModerationHandler(stub, nil, nil)

	router := gin.New()
	router.GET("/admin/content", h.List)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/content?sort=oldest", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "oldest", stub.filterSeen.SortBy)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/content?sort=oldest&sortBy=newest", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "newest", stub.filterSeen.SortBy)
}

func TestModerationHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &moderationServiceStub{deleteResp: &dto.DeleteContentResponse{
		ContentType:  models.ContentTypeMarketplace,
		ContentID:    "listing-1",
		DeletionType: models.DeletionHard,
	}}
	metrics := &deletionMetricsStub{}
	h := NewModerationHandler(stub, nil, metrics)

	router := gin.New()
	router.DELETE("/admin/content/:contentType/:contentId", withClaims(adminClaims()), h.Delete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/content/marketplace/listing-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, metrics.counted, 1)
	assert.Equal(t, [2]string{"marketplace", "hard"}, metrics.counted[0])
}

func TestModerationHandlerDeleteWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewModerationHandler(&moderationServiceStub{}, nil, nil)
	router := gin.New()
	router.DELETE("/admin/content/:contentType/:contentId", h.Delete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/content/feedback/fb-1", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestModerationHandlerDeleteNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &moderationServiceStub{err: appErrors.Clone(appErrors.ErrNotFound, "content not found")}
	h := NewModerationHandler(stub, nil, nil)

	router := gin.New()
	router.DELETE("/admin/content/:contentType/:contentId", withClaims(adminClaims()), h.Delete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/content/feedback/fb-404", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "content not found", envelope.Message)
}

func TestModerationHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	exports := &exportServiceStub{result: &service.ExportResult{
		Filename:    "content-report-20260830-120000.csv",
		ContentType: "text/csv",
		Data:        []byte("Type,ID\n"),
	}}
	h := NewModerationHandler(&moderationServiceStub{}, exports, nil)

	router := gin.New()
	router.GET("/admin/content/export", h.Export)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/content/export?format=csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "content-report-")
	assert.Equal(t, "Type,ID\n", rec.Body.String())
}

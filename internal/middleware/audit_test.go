package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

type auditRecorderStub struct {
	logs []*models.AuditLog
}

func (s *auditRecorderStub) CreateAuditLog(_ context.Context, log *models.AuditLog) error {
	s.logs = append(s.logs, log)
	return nil
}

func newAuditRouter(recorder *auditRecorderStub, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})
	})
	router.Use(AdminAudit(recorder))
	handle := func(c *gin.Context) { c.Status(status) }
	router.GET("/admin/content", handle)
	router.DELETE("/admin/content/:contentType/:contentId", handle)
	return router
}

func TestAdminAuditRecordsMutations(t *testing.T) {
	recorder := &auditRecorderStub{}
	router := newAuditRouter(recorder, http.StatusOK)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/content/feedback/fb-1", nil)
	req.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(rec, req)

	require.Len(t, recorder.logs, 1)
	log := recorder.logs[0]
	require.NotNil(t, log.UserID)
	assert.Equal(t, "admin-1", *log.UserID)
	assert.Equal(t, models.AuditActionAdminRequest, log.Action)
	assert.Equal(t, "admin", log.Resource)
	assert.Equal(t, "test-agent", log.UserAgent)
	assert.Contains(t, string(log.NewValues), "/admin/content/:contentType/:contentId")
}

func TestAdminAuditSkipsReads(t *testing.T) {
	recorder := &auditRecorderStub{}
	router := newAuditRouter(recorder, http.StatusOK)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/content", nil))

	assert.Empty(t, recorder.logs)
}

func TestAdminAuditSkipsFailures(t *testing.T) {
	recorder := &auditRecorderStub{}
	router := newAuditRouter(recorder, http.StatusNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/content/feedback/missing", nil))

	assert.Empty(t, recorder.logs)
}

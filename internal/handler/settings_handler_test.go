package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

type settingsServiceStub struct {
	settings []models.SystemSetting
	keySeen  string
	reqSeen  dto.UpdateSettingRequest
	err      error
}

func (s *settingsServiceStub) GetAll(ctx context.Context) ([]models.SystemSetting, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.settings, nil
}

func (s *settingsServiceStub) Set(ctx context.Context, key string, adminID string, req dto.UpdateSettingRequest) (*models.SystemSetting, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.keySeen = key
	s.reqSeen = req
	return &models.SystemSetting{Key: key, Value: req.Value}, nil
}

func TestSettingsHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &settingsServiceStub{settings: []models.SystemSetting{
		{Key: models.SettingMarketplaceEnabled, Value: "true"},
		{Key: models.SettingSectionIssueEnabled, Value: "false"},
	}}
	h := NewSettingsHandler(stub)

	router := gin.New()
	router.GET("/settings", h.List)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool            `json:"success"`
		Data    dto.SettingsMap `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "true", envelope.Data[models.SettingMarketplaceEnabled])
	assert.Equal(t, "false", envelope.Data[models.SettingSectionIssueEnabled])
}

func TestSettingsHandlerUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &settingsServiceStub{}
	h := NewSettingsHandler(stub)

	router := gin.New()
	router.PATCH("/settings/:key", withClaims(adminClaims()), h.Update)

	body := strings.NewReader(`{"value":"true"}`)
	req := httptest.NewRequest(http.MethodPatch, "/settings/section_issue_enabled", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "section_issue_enabled", stub.keySeen)
	assert.Equal(t, "true", stub.reqSeen.Value)
}

func TestSettingsHandlerUpdateWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSettingsHandler(&settingsServiceStub{})
	router := gin.New()
	router.PATCH("/settings/:key", h.Update)

	body := strings.NewReader(`{"value":"true"}`)
	req := httptest.NewRequest(http.MethodPatch, "/settings/marketplace_enabled", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

type settingsRepoStub struct {
	items map[string]string
	err   error
}

func (s *settingsRepoStub) GetAll(ctx context.Context) ([]models.SystemSetting, error) {
	if s.err != nil {
		return nil, s.err
	}
	var settings []models.SystemSetting
	for key, value := range s.items {
		settings = append(settings, models.SystemSetting{Key: key, Value: value})
	}
	return settings, nil
}

func (s *settingsRepoStub) Get(ctx context.Context, key string) (*models.SystemSetting, error) {
	if s.err != nil {
		return nil, s.err
	}
	value, ok := s.items[key]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &models.SystemSetting{Key: key, Value: value}, nil
}

func (s *settingsRepoStub) Upsert(ctx context.Context, key, value string, updatedBy string) (*models.SystemSetting, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.items[key] = value
	return &models.SystemSetting{Key: key, Value: value, UpdatedBy: &updatedBy}, nil
}

func TestSettingsServiceGetAllMergesDefaults(t *testing.T) {
	repo := &settingsRepoStub{items: map[string]string{
		models.SettingMarketplaceEnabled: "false",
	}}
	svc := NewSettingsService(repo, nil, map[string]string{
		models.SettingMarketplaceEnabled:  "true",
		models.SettingSectionIssueEnabled: "true",
	}, nil)

	settings, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 2)

	byKey := map[string]string{}
	for _, setting := range settings {
		byKey[setting.Key] = setting.Value
	}
	// stored value wins over the default
	assert.Equal(t, "false", byKey[models.SettingMarketplaceEnabled])
	assert.Equal(t, "true", byKey[models.SettingSectionIssueEnabled])
	assert.True(t, settings[0].Key < settings[1].Key)
}

func TestSettingsServiceGetFallsBackToDefault(t *testing.T) {
	repo := &settingsRepoStub{items: map[string]string{}}
	svc := NewSettingsService(repo, nil, map[string]string{
		models.SettingLostFoundExpiryDays: "30",
	}, nil)

	value, err := svc.Get(context.Background(), models.SettingLostFoundExpiryDays)
	require.NoError(t, err)
	assert.Equal(t, "30", value)

	_, err = svc.Get(context.Background(), "unknown_key")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestSettingsServiceIsEnabledStrictString(t *testing.T) {
	repo := &settingsRepoStub{items: map[string]string{
		"a": "true",
		"b": "TRUE",
		"c": "1",
		"d": "yes",
	}}
	svc := NewSettingsService(repo, nil, nil, nil)

	ctx := context.Background()
	assert.True(t, svc.IsEnabled(ctx, "a"))
	assert.False(t, svc.IsEnabled(ctx, "b"))
	assert.False(t, svc.IsEnabled(ctx, "c"))
	assert.False(t, svc.IsEnabled(ctx, "d"))
	assert.False(t, svc.IsEnabled(ctx, "absent"))
}

func TestSettingsServiceSet(t *testing.T) {
	repo := &settingsRepoStub{items: map[string]string{}}
	audit := &auditRepoStub{}
	svc := NewSettingsService(repo, audit, nil, nil)

	setting, err := svc.Set(context.Background(), models.SettingSectionIssueEnabled, "admin-1", dto.UpdateSettingRequest{Value: "true"})
	require.NoError(t, err)
	assert.Equal(t, "true", setting.Value)
	assert.Equal(t, "true", repo.items[models.SettingSectionIssueEnabled])
	assert.Len(t, audit.logs, 1)
}

func TestSettingsServiceSetEmptyKey(t *testing.T) {
	svc := NewSettingsService(&settingsRepoStub{items: map[string]string{}}, nil, nil, nil)

	_, err := svc.Set(context.Background(), "", "admin-1", dto.UpdateSettingRequest{Value: "true"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

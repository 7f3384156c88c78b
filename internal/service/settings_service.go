package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

type settingsRepository interface {
	GetAll(ctx context.Context) ([]models.SystemSetting, error)
	Get(ctx context.Context, key string) (*models.SystemSetting, error)
	Upsert(ctx context.Context, key, value string, updatedBy string) (*models.SystemSetting, error)
}

type settingsAuditRepository interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// SettingsService exposes the system settings registry. Every read goes to
// the store so a changed value takes effect on the next request; nothing is
// cached here.
type SettingsService struct {
	repo     settingsRepository
	audit    settingsAuditRepository
	defaults map[string]string
	logger   *zap.Logger
}

// NewSettingsService constructs a SettingsService. Defaults fill in
// well-known keys that have never been written.
func NewSettingsService(repo settingsRepository, audit settingsAuditRepository, defaults map[string]string, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, audit: audit, defaults: defaults, logger: logger}
}

// GetAll returns every setting, merging configured defaults for keys that
// have never been stored.
func (s *SettingsService) GetAll(ctx context.Context) ([]models.SystemSetting, error) {
	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list settings")
	}

	seen := make(map[string]struct{}, len(stored))
	for _, setting := range stored {
		seen[setting.Key] = struct{}{}
	}
	for key, value := range s.defaults {
		if _, ok := seen[key]; !ok {
			stored = append(stored, models.SystemSetting{Key: key, Value: value})
		}
	}

	sort.Slice(stored, func(i, j int) bool { return stored[i].Key < stored[j].Key })
	return stored, nil
}

// Get returns the value for a key, falling back to the configured default.
// Values are returned as stored strings; interpretation is the caller's job.
func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if value, ok := s.defaults[key]; ok {
				return value, nil
			}
			return "", appErrors.Clone(appErrors.ErrNotFound, "setting not found")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read setting")
	}
	return setting.Value, nil
}

// IsEnabled reports whether a boolean-valued setting holds the literal
// string "true". Any other value, including absence, reads as disabled.
func (s *SettingsService) IsEnabled(ctx context.Context, key string) bool {
	value, err := s.Get(ctx, key)
	if err != nil {
		return false
	}
	return value == "true"
}

// Set writes a setting value, creating the key on first write. The value is
// stored verbatim.
func (s *SettingsService) Set(ctx context.Context, key string, adminID string, req dto.UpdateSettingRequest) (*models.SystemSetting, error) {
	if key == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "setting key is required")
	}

	setting, err := s.repo.Upsert(ctx, key, req.Value, adminID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to write setting")
	}

	if s.audit != nil {
		if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
			UserID:     &adminID,
			Action:     models.AuditActionSettingUpdate,
			Resource:   "system_setting",
			ResourceID: &key,
			NewValues:  []byte(fmt.Sprintf(`{"value":%q}`, req.Value)),
		}); err != nil {
			s.logger.Warn("failed to record setting audit log", zap.Error(err))
		}
	}

	return setting, nil
}

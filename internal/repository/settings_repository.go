package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetAll reads every setting row. Values are stored and returned as strings;
// interpretation belongs to the caller.
func (r *SettingsRepository) GetAll(ctx context.Context) ([]models.SystemSetting, error) {
	const query = `
		SELECT key, value, updated_by, updated_at
		FROM system_settings
		ORDER BY key ASC`

	var settings []models.SystemSetting
	if err := r.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return settings, nil
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (*models.SystemSetting, error) {
	const query = `
		SELECT key, value, updated_by, updated_at
		FROM system_settings
		WHERE key = $1`

	var setting models.SystemSetting
	if err := r.db.GetContext(ctx, &setting, query, key); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("get setting %s: %w", key, err)
	}
	return &setting, nil
}

// Upsert writes a setting value, creating the key on first write.
func (r *SettingsRepository) Upsert(ctx context.Context, key, value string, updatedBy string) (*models.SystemSetting, error) {
	const query = `
		INSERT INTO system_settings (key, value, updated_by, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = NOW()
		RETURNING key, value, updated_by, updated_at`

	var setting models.SystemSetting
	if err := r.db.GetContext(ctx, &setting, query, key, value, updatedBy); err != nil {
		return nil, fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return &setting, nil
}

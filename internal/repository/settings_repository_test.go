package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestSettingsRepositoryGetAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	rows := sqlmock.NewRows([]string{"key", "value", "updated_by", "updated_at"}).
		AddRow("marketplace_enabled", "true", nil, time.Now()).
		AddRow("section_issue_enabled", "false", "admin-1", time.Now())
	mock.ExpectQuery("SELECT key, value").WillReturnRows(rows)

	settings, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "true", settings[0].Value)
	assert.Equal(t, "section_issue_enabled", settings[1].Key)
}

func TestSettingsRepositoryGetNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	mock.ExpectQuery("SELECT key, value").
		WithArgs("missing_key").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing_key")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestSettingsRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	rows := sqlmock.NewRows([]string{"key", "value", "updated_by", "updated_at"}).
		AddRow("section_issue_enabled", "true", "admin-1", time.Now())
	mock.ExpectQuery("INSERT INTO system_settings").
		WithArgs("section_issue_enabled", "true", "admin-1").
		WillReturnRows(rows)

	setting, err := repo.Upsert(context.Background(), "section_issue_enabled", "true", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "true", setting.Value)
	require.NotNil(t, setting.UpdatedBy)
	assert.Equal(t, "admin-1", *setting.UpdatedBy)
}

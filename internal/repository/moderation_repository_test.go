package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
)

func TestModerationRepositorySourceLookup(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewModerationRepository(db)
	for _, contentType := range models.ContentTypes {
		_, ok := repo.Source(contentType)
		assert.True(t, ok, "missing source for %s", contentType)
	}
	_, ok := repo.Source(models.ContentType("comments"))
	assert.False(t, ok)
}

func TestContentSourceFetch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewModerationRepository(db)
	source, ok := repo.Source(models.ContentTypeFeedback)
	require.True(t, ok)

	rows := sqlmock.NewRows([]string{"content_type", "id", "title", "content", "author_name", "status", "created_at"}).
		AddRow("feedback", "fb-1", "Wifi in library", "Barely usable at noon", "Rahim", "pending", time.Now())
	mock.ExpectQuery("SELECT 'feedback' AS content_type, (.+) FROM feedback_posts t JOIN users u").
		WithArgs("%wifi%").
		WillReturnRows(rows)

	items, err := source.Fetch(context.Background(), ContentQuery{Status: "pending", Search: "WiFi", Limit: 20})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ContentTypeFeedback, items[0].ContentType)
	assert.Equal(t, "Rahim", items[0].AuthorName)
}

func TestContentSourceFetchUnsupportedStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewModerationRepository(db)
	source, ok := repo.Source(models.ContentTypeMarketplace)
	require.True(t, ok)

	// marketplace has no pending vocabulary, so no query runs at all
	items, err := source.Fetch(context.Background(), ContentQuery{Status: "pending", Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, items)

	total, err := source.Count(context.Background(), ContentQuery{Status: "pending"})
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentSourceCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewModerationRepository(db)
	source, ok := repo.Source(models.ContentTypeLostFound)
	require.True(t, ok)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM lost_found_posts t JOIN users u").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := source.Count(context.Background(), ContentQuery{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestContentSourceSoftDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewModerationRepository(db)
	source, ok := repo.Source(models.ContentTypeLostFound)
	require.True(t, ok)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE lost_found_posts SET status = 'removed'").
		WithArgs("post-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	kind, err := source.Delete(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, models.DeletionSoft, kind)
}

func TestContentSourceSoftDeleteRepeat(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewModerationRepository(db)
	source, ok := repo.Source(models.ContentTypeFeedback)
	require.True(t, ok)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE feedback_posts SET status = 'deleted'").
		WithArgs("fb-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := source.Delete(context.Background(), "fb-1")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestContentSourceHardDeleteCascade(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewModerationRepository(db)
	source, ok := repo.Source(models.ContentTypeMarketplace)
	require.True(t, ok)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM listing_images").
		WithArgs("listing-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM marketplace_listings").
		WithArgs("listing-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	kind, err := source.Delete(context.Background(), "listing-1")
	require.NoError(t, err)
	assert.Equal(t, models.DeletionHard, kind)

	assert.NoError(t, mock.ExpectationsWereMet())
}

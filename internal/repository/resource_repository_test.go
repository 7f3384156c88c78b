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

func TestResourceRepositoryListWithFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResourceRepository(db)
	rows := sqlmock.NewRows([]string{"id", "course_id", "uploader_id", "title", "description", "file_path", "file_size", "mime_type", "download_count", "status", "created_at"}).
		AddRow("res-1", "course-1", "user-1", "Midterm notes", "", "course-1/res-1-notes.pdf", int64(2048), "application/pdf", 12, "active", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM resources WHERE status = 'active' AND course_id").
		WithArgs("course-1", "%midterm%").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM resources WHERE status = 'active'").
		WithArgs("course-1", "%midterm%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	resources, total, err := repo.List(context.Background(), models.ResourceFilter{
		CourseID: "course-1",
		Search:   "Midterm",
		Limit:    20,
	})
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Midterm notes", resources[0].Title)
}

func TestResourceRepositoryListClampsLimit(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResourceRepository(db)
	mock.ExpectQuery("LIMIT 20 OFFSET 0").
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "uploader_id", "title", "description", "file_path", "file_size", "mime_type", "download_count", "status", "created_at"}))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, total, err := repo.List(context.Background(), models.ResourceFilter{Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepositoryIncrementDownloadCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResourceRepository(db)
	mock.ExpectExec("UPDATE resources SET download_count = download_count \\+ 1").
		WithArgs("res-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementDownloadCount(context.Background(), "res-1")
	assert.NoError(t, err)
}

func TestResourceRepositoryIncrementDownloadCountMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResourceRepository(db)
	mock.ExpectExec("UPDATE resources SET download_count").
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementDownloadCount(context.Background(), "gone")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

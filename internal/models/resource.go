package models

import "time"

// ResourceStatus captures resource visibility.
type ResourceStatus string

const (
	ResourceStatusActive  ResourceStatus = "active"
	ResourceStatusRemoved ResourceStatus = "removed"
)

// Resource is a file record attached to a course. UploaderID is nullable
// because admin-seeded resources have no owner.
type Resource struct {
	ID            string         `db:"id" json:"id"`
	CourseID      string         `db:"course_id" json:"course_id"`
	UploaderID    *string        `db:"uploader_id" json:"uploader_id,omitempty"`
	Title         string         `db:"title" json:"title"`
	Description   *string        `db:"description" json:"description,omitempty"`
	FilePath      string         `db:"file_path" json:"-"`
	FileSize      int64          `db:"file_size" json:"file_size"`
	MimeType      string         `db:"mime_type" json:"mime_type"`
	DownloadCount int            `db:"download_count" json:"download_count"`
	Status        ResourceStatus `db:"status" json:"status"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// RequestStatus enumerates the resource request lifecycle. Transitions are
/// monotonic: a request never returns to pending once advanced.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
	RequestStatusUploaded RequestStatus = "uploaded"
)

// ResourceRequest is a student's request for a named resource tied to a course.
type ResourceRequest struct {
	ID                  string        `db:"id" json:"id"`
	UserID              string        `db:"user_id" json:"user_id"`
	CourseID            string        `db:"course_id" json:"course_id"`
	ResourceName        string        `db:"resource_name" json:"resource_name"`
	Description         *string       `db:"description" json:"description,omitempty"`
	Status              RequestStatus `db:"status" json:"status"`
	FulfilledResourceID *string       `db:"fulfilled_resource_id" json:"fulfilled_resource_id,omitempty"`
	ReviewedBy          *string       `db:"reviewed_by" json:"reviewed_by,omitempty"`
	CreatedAt           time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time     `db:"updated_at" json:"updated_at"`
}

// ResourceFilter scopes resource listing queries.
type ResourceFilter struct {
	CourseID string
	Search   string
	Limit    int
	Offset   int
}

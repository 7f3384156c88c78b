package models

import "time"

// SectionRequestStatus enumerates the section request lifecycle.
type SectionRequestStatus string

const (
	SectionRequestStatusPending   SectionRequestStatus = "pending"
	SectionRequestStatusApproved  SectionRequestStatus = "approved"
	SectionRequestStatusRejected  SectionRequestStatus = "rejected"
	SectionRequestStatusCompleted SectionRequestStatus = "completed"
)

// SectionRequest is a student's request to move into a course section,
// backed by other students via support_count.
type SectionRequest struct {
	ID           string               `db:"id" json:"id"`
	UserID       string               `db:"user_id" json:"user_id"`
	CourseID     string               `db:"course_id" json:"course_id"`
	Section      string               `db:"section" json:"section"`
	Reason       *string              `db:"reason" json:"reason,omitempty"`
	SupportCount int                  `db:"support_count" json:"support_count"`
	Status       SectionRequestStatus `db:"status" json:"status"`
	ApprovedBy   *string              `db:"approved_by" json:"approved_by,omitempty"`
	CreatedAt    time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time            `db:"updated_at" json:"updated_at"`
}

// SectionExchangeStatus enumerates exchange offer states.
type SectionExchangeStatus string

const (
	SectionExchangeStatusActive    SectionExchangeStatus = "active"
	SectionExchangeStatusMatched   SectionExchangeStatus = "matched"
	SectionExchangeStatusExchanged SectionExchangeStatus = "exchanged"
	SectionExchangeStatusDeleted   SectionExchangeStatus = "deleted"
)

// SectionExchange is an offer to swap course sections with another student.
type SectionExchange struct {
	ID             string                `db:"id" json:"id"`
	UserID         string                `db:"user_id" json:"user_id"`
	CourseID       string                `db:"course_id" json:"course_id"`
	CurrentSection string                `db:"current_section" json:"current_section"`
	DesiredSection string                `db:"desired_section" json:"desired_section"`
	Note           *string               `db:"note" json:"note,omitempty"`
	Status         SectionExchangeStatus `db:"status" json:"status"`
	CreatedAt      time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time             `db:"updated_at" json:"updated_at"`
}

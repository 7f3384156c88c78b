package dto

import "time"

// CreateResourceRequestRequest is the payload for filing a resource request.
type CreateResourceRequestRequest struct {
	CourseID     string `json:"course_id" validate:"required"`
	ResourceName string `json:"resource_name" validate:"required"`
	Description  string `json:"description"`
}

// ReviewRequestRequest carries an admin approve/reject decision.
type ReviewRequestRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// FulfillRequestRequest links an uploaded resource to a request.
type FulfillRequestRequest struct {
	ResourceID string `json:"resource_id" validate:"required"`
}

// DownloadLinkResponse returns a signed, time-limited download URL.
type DownloadLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

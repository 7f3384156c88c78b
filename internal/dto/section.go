package dto

// CreateSectionRequestRequest is the payload for opening a section request.
type CreateSectionRequestRequest struct {
	CourseID string `json:"course_id" validate:"required"`
	Section  string `json:"section" validate:"required"`
	Reason   string `json:"reason"`
}

// UpdateSectionRequestStatusRequest carries an admin decision on a section request.
type UpdateSectionRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected completed"`
}

// CreateSectionExchangeRequest is the payload for posting an exchange offer.
type CreateSectionExchangeRequest struct {
	CourseID       string `json:"course_id" validate:"required"`
	CurrentSection string `json:"current_section" validate:"required"`
	DesiredSection string `json:"desired_section" validate:"required"`
	Note           string `json:"note"`
}

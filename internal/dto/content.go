package dto

// CreateLostFoundRequest is the payload for reporting a lost or found item.
type CreateLostFoundRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"`
	PostType    string `json:"post_type" validate:"required,oneof=lost found"`
}

// CreateListingRequest is the payload for publishing a marketplace listing.
type CreateListingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// CreateFeedbackRequest is the payload for submitting moderated feedback.
type CreateFeedbackRequest struct {
	CourseID string `json:"course_id"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Rating   *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

// UpdateFeedbackStatusRequest carries an admin moderation decision.
type UpdateFeedbackStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

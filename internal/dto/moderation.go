package dto

import "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"

// ContentListResponse is the moderation view: a windowed, normalized slice of
// items plus the count of all matching rows across types before pagination.
type ContentListResponse struct {
	Items []models.ModeratedContentItem `json:"items"`
	Total int                           `json:"total"`
}

// DeleteContentResponse reports which deletion policy was applied.
type DeleteContentResponse struct {
	ContentType  models.ContentType  `json:"content_type"`
	ContentID    string              `json:"content_id"`
	DeletionType models.DeletionType `json:"deletion_type"`
}

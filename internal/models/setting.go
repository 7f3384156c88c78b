package models

import "time"

// Well-known setting keys consulted by request handling logic.
const (
	SettingSectionIssueEnabled = "section_issue_enabled"
	SettingMarketplaceEnabled  = "marketplace_enabled"
	SettingMaxUploadSizeMB     = "max_upload_size_mb"
	SettingLostFoundExpiryDays = "lost_found_expiry_days"
)

// SystemSetting is a key/value configuration entry. Values are always the
// string representation (booleans stored as literal "true"/"false"); callers
// compare with string equality, never native booleans.
type SystemSetting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedBy *string   `db:"updated_by" json:"updated_by,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

package dto

// UpdateSettingRequest carries the new value for a setting key. The value is
// stored as-is: booleans travel as the literal strings "true"/"false".
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// SettingsMap is the settings registry read shape: key to stored string
// value, defaults merged in for keys that were never written.
type SettingsMap map[string]string

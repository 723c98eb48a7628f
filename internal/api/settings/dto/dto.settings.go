// Package dto defines the settings request payloads.
package dto

// SettingsUpdateInput is the partial update payload for the singleton
// settings document. Absent fields keep their stored values.
type SettingsUpdateInput struct {
	MenuTheme      string `json:"menuTheme,omitempty" validate:"omitempty,no_xss"`
	AdminThemeMode string `json:"adminThemeMode,omitempty" validate:"omitempty,oneof=light dark"`
	Language       string `json:"language,omitempty" validate:"omitempty,oneof=es en"`
}

// BusinessContactCreateInput is the payload for creating a contact channel.
type BusinessContactCreateInput struct {
	Type      string `json:"type" validate:"required,oneof=whatsapp instagram phone email address"`
	Label     string `json:"label,omitempty" validate:"omitempty,no_xss"`
	Value     string `json:"value" validate:"required,no_xss"`
	IsEnabled *bool  `json:"isEnabled,omitempty"`
}

// BusinessContactUpdateInput is the payload for updating a contact channel.
type BusinessContactUpdateInput struct {
	Type      string `json:"type,omitempty" validate:"omitempty,oneof=whatsapp instagram phone email address"`
	Label     string `json:"label,omitempty" validate:"omitempty,no_xss"`
	Value     string `json:"value,omitempty" validate:"omitempty,no_xss"`
	IsEnabled *bool  `json:"isEnabled,omitempty"`
}

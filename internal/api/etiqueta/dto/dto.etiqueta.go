// Package dto defines the tag request payloads.
package dto

// EtiquetaCreateInput is the payload for creating a tag.
type EtiquetaCreateInput struct {
	Ref   string `json:"ref" validate:"required,no_xss"`
	Name  string `json:"name" validate:"required,no_xss"`
	Color string `json:"color,omitempty" validate:"omitempty,no_xss"`
}

// EtiquetaUpdateInput is the payload for updating a tag.
type EtiquetaUpdateInput struct {
	Name      string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Color     string `json:"color,omitempty" validate:"omitempty,no_xss"`
	IsEnabled *bool  `json:"isEnabled,omitempty"`
}

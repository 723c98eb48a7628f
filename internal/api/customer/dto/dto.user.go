// Package dto defines the customer request payloads.
package dto

// UserCreateInput is the payload for creating a customer record manually.
type UserCreateInput struct {
	PhoneNumber string   `json:"phoneNumber" validate:"required,phone_number"`
	Name        string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Birthdate   string   `json:"birthdate,omitempty"`
	Gender      string   `json:"gender,omitempty" validate:"omitempty,no_xss"`
	Notes       string   `json:"notes,omitempty" validate:"omitempty,no_xss"`
	Tags        []string `json:"tags,omitempty"`
}

// UserTagInput attaches a tag to the customer behind a phone number.
type UserTagInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
	Tag         string `json:"tag" validate:"required,no_xss"`
}

// UserUpdateInput is the payload for updating a customer record.
type UserUpdateInput struct {
	Name      string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Birthdate string   `json:"birthdate,omitempty"`
	Gender    string   `json:"gender,omitempty" validate:"omitempty,no_xss"`
	Notes     string   `json:"notes,omitempty" validate:"omitempty,no_xss"`
	Tags      []string `json:"tags,omitempty"`
}

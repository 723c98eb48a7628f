// Package dto carries the request payloads accepted by the auth endpoints.
package dto

// AdminCreateInput creates a new administrator account.
type AdminCreateInput struct {
	Email    string `json:"email" validate:"required,email,no_xss"`
	Password string `json:"password" validate:"required,strong_password"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=100,no_xss"`
}

// AdminUpdateInput updates mutable admin fields. Email and password have
// dedicated flows and are not changeable here.
type AdminUpdateInput struct {
	Name      string `json:"name,omitempty" validate:"omitempty,max=100,no_xss"`
	IsEnabled *bool  `json:"isEnabled,omitempty"`
}

// AdminLoginInput is the login request.
type AdminLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminChangePasswordInput rotates the caller's own password.
type AdminChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strong_password"`
}

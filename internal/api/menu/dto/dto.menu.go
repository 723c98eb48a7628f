// Package dto defines the menu request payloads.
package dto

// BurgerCreateInput is the payload for creating a menu item.
type BurgerCreateInput struct {
	Name              string   `json:"name" validate:"required,no_xss"`
	Description       string   `json:"description,omitempty" validate:"omitempty,no_xss"`
	Price             float64  `json:"price" validate:"required,gt=0"`
	Ingredients       []string `json:"ingredients,omitempty"`
	Image             string   `json:"image,omitempty"`
	Category          string   `json:"category,omitempty" validate:"omitempty,no_xss"`
	IsAvailable       *bool    `json:"isAvailable,omitempty"`
	EstimatedPrepTime int64    `json:"estimatedPrepTime,omitempty" validate:"omitempty,gte=0"`
}

// BurgerUpdateInput is the payload for updating a menu item. Pointer fields
// distinguish "not sent" from zero values.
type BurgerUpdateInput struct {
	Name              string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description       string   `json:"description,omitempty" validate:"omitempty,no_xss"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Ingredients       []string `json:"ingredients,omitempty"`
	Image             string   `json:"image,omitempty"`
	Category          string   `json:"category,omitempty" validate:"omitempty,no_xss"`
	IsAvailable       *bool    `json:"isAvailable,omitempty"`
	EstimatedPrepTime *int64   `json:"estimatedPrepTime,omitempty" validate:"omitempty,gte=0"`
}

// IngredientCreateInput is the payload for creating an ingredient.
type IngredientCreateInput struct {
	Name     string  `json:"name" validate:"required,no_xss"`
	Cost     float64 `json:"cost" validate:"gte=0"`
	Unit     string  `json:"unit,omitempty" validate:"omitempty,no_xss"`
	Category string  `json:"category,omitempty" validate:"omitempty,no_xss"`
}

// IngredientUpdateInput is the payload for updating an ingredient.
type IngredientUpdateInput struct {
	Name     string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Cost     *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Unit     string   `json:"unit,omitempty" validate:"omitempty,no_xss"`
	Category string   `json:"category,omitempty" validate:"omitempty,no_xss"`
}

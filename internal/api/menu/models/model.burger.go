// Package models defines the menu documents: burgers and ingredients.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Burger is one menu item. Price is the selling price shown to customers
// and captured into orders; EstimatedPrepTime (minutes) feeds the kitchen
// delay alerts.
type Burger struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name" index:"unique,sparse"`
	Description       string             `json:"description,omitempty" bson:"description,omitempty"`
	Price             float64            `json:"price" bson:"price"`
	Ingredients       []string           `json:"ingredients" bson:"ingredients"`
	Image             string             `json:"image,omitempty" bson:"image,omitempty"`
	Category          string             `json:"category,omitempty" bson:"category,omitempty"`
	IsAvailable       bool               `json:"isAvailable" bson:"isAvailable"`
	EstimatedPrepTime int64              `json:"estimatedPrepTime,omitempty" bson:"estimatedPrepTime,omitempty"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}

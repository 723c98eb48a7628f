// Package models defines the customer tag documents.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Etiqueta is a customer tag. System-managed tags (like the new-customer
// tag) are created at bootstrap and cannot be renamed or disabled.
type Etiqueta struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Ref             string             `json:"ref" bson:"ref" index:"unique,sparse"`
	Name            string             `json:"name" bson:"name"`
	Color           string             `json:"color,omitempty" bson:"color,omitempty"`
	IsEnabled       bool               `json:"isEnabled" bson:"isEnabled"`
	IsSystemManaged bool               `json:"isSystemManaged" bson:"isSystemManaged"`
	IsSystemCreated bool               `json:"isSystemCreated" bson:"isSystemCreated"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

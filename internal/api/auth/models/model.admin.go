// Package models defines the back-office administrator entities.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is a back-office account. Email is unique case-insensitively: it is
// lowercased before every write and lookup, and the unique index enforces
// the rest.
type Admin struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	PasswordHash string             `json:"-" bson:"passwordHash,omitempty"`
	Name         string             `json:"name,omitempty" bson:"name,omitempty"`
	IsEnabled    bool               `json:"isEnabled" bson:"isEnabled"`
	CreatedAt    int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

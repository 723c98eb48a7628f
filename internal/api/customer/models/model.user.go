// Package models defines the customer documents.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a customer identified by phone number. Records are created
// implicitly the first time a phone places an order.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PhoneNumber string             `json:"phoneNumber" bson:"phoneNumber" index:"unique,sparse"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	Birthdate   string             `json:"birthdate,omitempty" bson:"birthdate,omitempty"`
	Gender      string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Tags        []string           `json:"tags" bson:"tags"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

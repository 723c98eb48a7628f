package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ingredient is a kitchen supply with its unit cost, used for menu costing.
type Ingredient struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique,sparse"`
	Cost      float64            `json:"cost" bson:"cost"`
	Unit      string             `json:"unit,omitempty" bson:"unit,omitempty"`
	Category  string             `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Package models defines the settings documents.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings is the single storefront configuration document. The ref field
// pins the singleton so upserts always hit the same document.
type Settings struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Ref            string             `json:"ref" bson:"ref" index:"unique,sparse" default:"main"`
	MenuTheme      string             `json:"menuTheme" bson:"menuTheme" default:"classic"`
	AdminThemeMode string             `json:"adminThemeMode" bson:"adminThemeMode" default:"light"`
	Language       string             `json:"language" bson:"language" default:"es"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// BusinessContact is one public contact channel of the restaurant.
type BusinessContact struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Type      string             `json:"type" bson:"type"`
	Label     string             `json:"label,omitempty" bson:"label,omitempty"`
	Value     string             `json:"value" bson:"value"`
	IsEnabled bool               `json:"isEnabled" bson:"isEnabled"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

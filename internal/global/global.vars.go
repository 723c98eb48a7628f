// Package global holds the few process-wide singletons that are genuinely
// cross-cutting: the request validator and the collection name catalog. The
// Mongo client is NOT here; it is constructed in cmd/server and injected
// into services.
package global

import (
	"github.com/go-playground/validator/v10"
)

// CollectionNames catalogs every MongoDB collection the application uses.
type CollectionNames struct {
	Orders           string
	Burgers          string
	Users            string
	Admins           string
	Ingredients      string
	Settings         string
	Etiquetas        string
	BusinessContacts string
}

// Validate is the shared validator instance, set up by InitValidator.
var Validate *validator.Validate

// ColNames holds the collection names, populated by InitColNames at boot.
var ColNames CollectionNames

// InitColNames fills the collection name catalog.
func InitColNames() {
	ColNames = CollectionNames{
		Orders:           "orders",
		Burgers:          "burgers",
		Users:            "users",
		Admins:           "admins",
		Ingredients:      "ingredients",
		Settings:         "settings",
		Etiquetas:        "etiquetas",
		BusinessContacts: "businessContacts",
	}
}

// AllCollectionNames returns every collection name for bootstrap (ensure
// collections exist, create indexes).
func AllCollectionNames() []string {
	return []string{
		ColNames.Orders,
		ColNames.Burgers,
		ColNames.Users,
		ColNames.Admins,
		ColNames.Ingredients,
		ColNames.Settings,
		ColNames.Etiquetas,
		ColNames.BusinessContacts,
	}
}

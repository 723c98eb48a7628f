// Package router registers the settings routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "github.com/GreenD94/ladingburger-sub002/internal/api/router"
	settingshdl "github.com/GreenD94/ladingburger-sub002/internal/api/settings/handler"
)

// Register mounts the settings routes. The storefront reads settings and
// contacts without auth; edits are back-office.
func Register(settings *settingshdl.SettingsHandler, contacts *settingshdl.BusinessContactHandler) apirouter.RegisterFunc {
	return func(base fiber.Router, v1 fiber.Router, r *apirouter.Router) error {
		auth := []fiber.Handler{r.Auth()}

		// Public storefront surface.
		apirouter.RegisterRouteWithMiddleware(base, "", "GET", "/settings", nil, settings.HandleGet)
		apirouter.RegisterRouteWithMiddleware(base, "", "GET", "/contacts", nil, settings.HandlePublicContacts)

		// Back-office.
		apirouter.RegisterRouteWithMiddleware(v1, "/settings", "GET", "", auth, settings.HandleGet)
		apirouter.RegisterRouteWithMiddleware(v1, "/settings", "PUT", "", auth, settings.HandleUpdate)
		r.RegisterCRUDRoutes(v1, "/business-contacts", contacts, apirouter.ReadWriteConfig)

		return nil
	}
}

// Package router registers the notification routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	notificationhdl "github.com/GreenD94/ladingburger-sub002/internal/api/notification/handler"
	apirouter "github.com/GreenD94/ladingburger-sub002/internal/api/router"
)

// Register mounts the notification routes. The business contact link is
// public; order notification links are back-office.
func Register(whatsapp *notificationhdl.WhatsAppHandler) apirouter.RegisterFunc {
	return func(base fiber.Router, v1 fiber.Router, r *apirouter.Router) error {
		auth := []fiber.Handler{r.Auth()}

		apirouter.RegisterRouteWithMiddleware(base, "", "GET", "/whatsapp-link", nil, whatsapp.HandleBusinessLink)
		apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/whatsapp-link", auth, whatsapp.HandleOrderLink)

		return nil
	}
}

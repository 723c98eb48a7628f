// Package router registers the customer routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	customerhdl "github.com/GreenD94/ladingburger-sub002/internal/api/customer/handler"
	apirouter "github.com/GreenD94/ladingburger-sub002/internal/api/router"
)

// Register mounts the customer routes, all behind the admin middleware.
func Register(users *customerhdl.UserHandler) apirouter.RegisterFunc {
	return func(base fiber.Router, v1 fiber.Router, r *apirouter.Router) error {
		auth := []fiber.Handler{r.Auth()}

		apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/by-phone", auth, users.HandleFindByPhone)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/tags", auth, users.HandleAddTag)
		r.RegisterCRUDRoutes(v1, "/users", users, apirouter.ReadWriteConfig)

		return nil
	}
}

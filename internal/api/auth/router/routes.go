// Package router registers the auth domain routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/GreenD94/ladingburger-sub002/internal/api/auth/handler"
	apirouter "github.com/GreenD94/ladingburger-sub002/internal/api/router"
)

// Register mounts the auth routes: public login plus the protected session
// and admin management endpoints. Admin CRUD is read/write so the dashboard
// can manage accounts; creation goes through /auth/register to hash the
// password.
func Register(adminHandler *authhdl.AdminHandler) apirouter.RegisterFunc {
	return func(base fiber.Router, v1 fiber.Router, r *apirouter.Router) error {
		auth := []fiber.Handler{r.Auth()}

		// Public: login only.
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", nil, adminHandler.HandleLogin)

		// Protected session endpoints.
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", auth, adminHandler.HandleMe)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", auth, adminHandler.HandleLogout)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/register", auth, adminHandler.HandleRegister)
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/change-password", auth, adminHandler.HandleChangePassword)

		// Admin account CRUD (reads, updates, deletes; no insert-one, see
		// /auth/register).
		crud := apirouter.ReadWriteConfig
		crud.InsOne = false
		crud.Upsert = false
		r.RegisterCRUDRoutes(v1, "/admins", adminHandler, crud)

		return nil
	}
}

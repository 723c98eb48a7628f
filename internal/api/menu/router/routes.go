// Package router registers the menu routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	menuhdl "github.com/GreenD94/ladingburger-sub002/internal/api/menu/handler"
	apirouter "github.com/GreenD94/ladingburger-sub002/internal/api/router"
)

// Register mounts the menu routes. The storefront endpoints live under /api
// without auth; back-office CRUD and the costing report live under /api/v1
// behind the admin middleware.
func Register(burgers *menuhdl.BurgerHandler, ingredients *menuhdl.IngredientHandler, seed *menuhdl.SeedHandler) apirouter.RegisterFunc {
	return func(base fiber.Router, v1 fiber.Router, r *apirouter.Router) error {
		auth := []fiber.Handler{r.Auth()}

		// Public storefront surface.
		apirouter.RegisterRouteWithMiddleware(base, "", "GET", "/burgers", nil, burgers.HandlePublicMenu)
		apirouter.RegisterRouteWithMiddleware(base, "", "GET", "/seed-menu", nil, seed.HandleSeedMenu)
		apirouter.RegisterRouteWithMiddleware(base, "", "POST", "/seed", nil, seed.HandleSeedMenu)

		// Kitchen dashboard ingredient surface.
		apirouter.RegisterRouteWithMiddleware(base, "/ingredients", "GET", "", auth, ingredients.HandleList)
		apirouter.RegisterRouteWithMiddleware(base, "/ingredients", "POST", "", auth, ingredients.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(base, "/ingredients", "PUT", "/:id", auth, ingredients.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(base, "/ingredients", "DELETE", "/:id", auth, ingredients.HandleDelete)

		// Back-office CRUD.
		r.RegisterCRUDRoutes(v1, "/burgers", burgers, apirouter.ReadWriteConfig)
		r.RegisterCRUDRoutes(v1, "/ingredients", ingredients, apirouter.ReadWriteConfig)
		apirouter.RegisterRouteWithMiddleware(v1, "/burgers", "GET", "/costing", auth, burgers.HandleCosting)

		return nil
	}
}

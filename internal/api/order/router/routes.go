// Package router registers the order routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	orderhdl "github.com/GreenD94/ladingburger-sub002/internal/api/order/handler"
	apirouter "github.com/GreenD94/ladingburger-sub002/internal/api/router"
)

// Register mounts the order routes. Checkout, tracking and the active-order
// check are public; everything else is back-office.
func Register(orders *orderhdl.OrderHandler) apirouter.RegisterFunc {
	return func(base fiber.Router, v1 fiber.Router, r *apirouter.Router) error {
		auth := []fiber.Handler{r.Auth()}

		// Public storefront surface.
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "", nil, orders.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/track", nil, orders.HandleTrack)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/has-active", nil, orders.HandleHasActive)

		// Back-office lifecycle.
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/status", auth, orders.HandleUpdateStatus)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/payment", auth, orders.HandleUpdatePayment)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/payment/failed", auth, orders.HandleMarkPaymentFailed)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/active", auth, orders.HandleActive)
		apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/alerts", auth, orders.HandleAlerts)

		// Back-office CRUD (no public insert; checkout owns creation).
		crud := apirouter.ReadWriteConfig
		crud.InsOne = false
		crud.Upsert = false
		r.RegisterCRUDRoutes(v1, "/orders", orders, crud)

		return nil
	}
}

// Package router registers the analytics routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	analyticshdl "github.com/GreenD94/ladingburger-sub002/internal/api/analytics/handler"
	apirouter "github.com/GreenD94/ladingburger-sub002/internal/api/router"
)

// Register mounts the analytics routes, all behind the admin middleware.
func Register(analytics *analyticshdl.AnalyticsHandler) apirouter.RegisterFunc {
	return func(base fiber.Router, v1 fiber.Router, r *apirouter.Router) error {
		auth := []fiber.Handler{r.Auth()}

		apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/summary", auth, analytics.HandleSummary)
		apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/peak-hours", auth, analytics.HandlePeakHours)
		apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/top-items", auth, analytics.HandleTopItems)
		apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/customers", auth, analytics.HandleCustomers)

		return nil
	}
}

package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

var startTime = time.Now()

// HealthCheck reports process liveness and uptime. Registered without auth
// so load balancers can probe it.
func HealthCheck(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(startTime).String(),
		"time":   time.Now().Format(time.RFC3339),
	})
}

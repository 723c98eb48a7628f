package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	menusvc "github.com/GreenD94/ladingburger-sub002/internal/api/menu/service"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// SeedHandler exposes the demo-data loaders.
type SeedHandler struct {
	service *menusvc.SeedService
}

// NewSeedHandler wires the handler.
func NewSeedHandler(service *menusvc.SeedService) *SeedHandler {
	return &SeedHandler{service: service}
}

// HandleSeedMenu loads the demo menu. Safe to call repeatedly: the run is
// skipped once burgers exist.
func (h *SeedHandler) HandleSeedMenu(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		result, err := h.service.SeedMenu(c.Context())
		if err == nil && !result.Skipped {
			logger.LogAction("seed_menu", c, map[string]interface{}{
				"burgers":     result.BurgersInserted,
				"ingredients": result.IngredientsInserted,
			})
		}
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

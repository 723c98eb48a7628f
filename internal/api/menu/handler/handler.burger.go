// Package handler exposes the menu HTTP endpoints.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	"github.com/GreenD94/ladingburger-sub002/internal/api/menu/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/menu/models"
	menusvc "github.com/GreenD94/ladingburger-sub002/internal/api/menu/service"
)

// BurgerHandler carries the burger CRUD endpoints plus the public menu and
// the costing report.
type BurgerHandler struct {
	*basehdl.BaseHandler[models.Burger, dto.BurgerCreateInput, dto.BurgerUpdateInput]
	service     *menusvc.BurgerService
	ingredients *menusvc.IngredientService
}

// NewBurgerHandler wires the handler.
func NewBurgerHandler(service *menusvc.BurgerService, ingredients *menusvc.IngredientService) *BurgerHandler {
	return &BurgerHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Burger, dto.BurgerCreateInput, dto.BurgerUpdateInput](service),
		service:     service,
		ingredients: ingredients,
	}
}

// HandlePublicMenu returns the available burgers. This is the public menu
// endpoint the storefront renders from.
func (h *BurgerHandler) HandlePublicMenu(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		burgers, err := h.service.FindAvailable(c.Context())
		basehdl.HandleResponse(c, burgers, err)
		return nil
	})
}

// BurgerCosting is one row of the costing report.
type BurgerCosting struct {
	BurgerID string  `json:"burgerId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Margin   float64 `json:"margin"`
}

// HandleCosting returns ingredient cost and gross margin per burger.
func (h *BurgerHandler) HandleCosting(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		burgers, err := h.service.Find(c.Context(), nil, nil)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		costs, err := h.ingredients.CostIndex(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		rows := make([]BurgerCosting, 0, len(burgers))
		for _, b := range burgers {
			cost := menusvc.ComputeBurgerCost(b, costs)
			rows = append(rows, BurgerCosting{
				BurgerID: b.ID.Hex(),
				Name:     b.Name,
				Price:    b.Price,
				Cost:     cost,
				Margin:   menusvc.ComputeMargin(b.Price, cost),
			})
		}

		basehdl.HandleResponse(c, rows, nil)
		return nil
	})
}

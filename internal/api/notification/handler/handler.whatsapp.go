// Package handler exposes the notification HTTP endpoints.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	notificationsvc "github.com/GreenD94/ladingburger-sub002/internal/api/notification/service"
	ordersvc "github.com/GreenD94/ladingburger-sub002/internal/api/order/service"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

// WhatsAppHandler serves wa.me links for order notifications.
type WhatsAppHandler struct {
	service *notificationsvc.WhatsAppService
	orders  *ordersvc.OrderService
}

// NewWhatsAppHandler wires the handler.
func NewWhatsAppHandler(service *notificationsvc.WhatsAppService, orders *ordersvc.OrderService) *WhatsAppHandler {
	return &WhatsAppHandler{
		service: service,
		orders:  orders,
	}
}

// HandleOrderLink builds the wa.me link for ?orderId= and ?template=.
func (h *WhatsAppHandler) HandleOrderLink(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		template := c.Query("template")
		if template == "" {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "se requiere el parámetro template", common.StatusBadRequest, nil))
			return nil
		}

		orderID, err := basesvc.EnsureObjectID(c.Query("orderId"))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orders.FindOneById(c.Context(), orderID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		link, err := h.service.LinkForOrder(template, order)
		basehdl.HandleResponse(c, map[string]string{"link": link}, err)
		return nil
	})
}

// HandleBusinessLink builds the wa.me link to the restaurant's own number,
// for the storefront contact button.
func (h *WhatsAppHandler) HandleBusinessLink(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		message := c.Query("message")
		if message == "" {
			message = "¡Hola! Quiero hacer un pedido."
		}

		link, err := h.service.BusinessLink(message)
		basehdl.HandleResponse(c, map[string]string{"link": link}, err)
		return nil
	})
}

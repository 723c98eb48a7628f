// Package handler exposes the order HTTP endpoints: the public checkout and
// tracking surface plus the back-office lifecycle operations.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
	ordersvc "github.com/GreenD94/ladingburger-sub002/internal/api/order/service"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// OrderHandler carries the order CRUD endpoints plus the lifecycle surface.
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, dto.OrderCreateInput, dto.OrderUpdateInput]
	service *ordersvc.OrderService
}

// NewOrderHandler wires the handler.
func NewOrderHandler(service *ordersvc.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Order, dto.OrderCreateInput, dto.OrderUpdateInput](service),
		service:     service,
	}
}

func requireQueryPhone(c fiber.Ctx) (string, error) {
	phone := c.Query("phone")
	if phone == "" {
		return "", common.NewError(common.ErrCodeValidationInput, "se requiere el parámetro phone", common.StatusBadRequest, nil)
	}
	return phone, nil
}

// HandleCreate places a new order from the storefront checkout.
func (h *OrderHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.OrderCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.service.Create(c.Context(), input)
		basehdl.HandleResponse(c, order, err)
		return nil
	})
}

// HandleTrack returns a customer's orders for the public tracking page.
func (h *OrderHandler) HandleTrack(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		phone, err := requireQueryPhone(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		orders, err := h.service.FindByPhone(c.Context(), phone)
		basehdl.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleHasActive reports whether a phone has an order still in progress.
func (h *OrderHandler) HandleHasActive(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		phone, err := requireQueryPhone(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		active, err := h.service.HasActiveOrder(c.Context(), phone)
		basehdl.HandleResponse(c, map[string]bool{"hasActiveOrder": active}, err)
		return nil
	})
}

// HandleUpdateStatus moves an order through the lifecycle.
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.OrderStatusUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		orderID, err := basesvc.EnsureObjectID(input.OrderID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.service.UpdateStatus(c.Context(), orderID, models.OrderStatus(input.Status), input.Comment)
		if err == nil {
			logger.LogCRUD("update", "order_status", input.OrderID, c, map[string]interface{}{"status": input.Status})
		}
		basehdl.HandleResponse(c, order, err)
		return nil
	})
}

// HandleUpdatePayment records a verified transfer.
func (h *OrderHandler) HandleUpdatePayment(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.OrderPaymentUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.service.UpdatePayment(c.Context(), input)
		if err == nil {
			logger.LogCRUD("update", "order_payment", input.OrderID, c, nil)
		}
		basehdl.HandleResponse(c, order, err)
		return nil
	})
}

// HandleMarkPaymentFailed flags a transfer that could not be verified.
func (h *OrderHandler) HandleMarkPaymentFailed(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.OrderPaymentFailedInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		orderID, err := basesvc.EnsureObjectID(input.OrderID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.service.MarkPaymentFailed(c.Context(), orderID, input.Comment)
		if err == nil {
			logger.LogCRUD("update", "order_payment_failed", input.OrderID, c, nil)
		}
		basehdl.HandleResponse(c, order, err)
		return nil
	})
}

// HandleActive returns every order still in progress, for the kitchen board.
func (h *OrderHandler) HandleActive(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		orders, err := h.service.FindActive(c.Context())
		basehdl.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleAlerts returns the derived alert board.
func (h *OrderHandler) HandleAlerts(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		alerts, err := h.service.Alerts(c.Context())
		basehdl.HandleResponse(c, alerts, err)
		return nil
	})
}

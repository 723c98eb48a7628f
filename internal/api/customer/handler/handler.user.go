// Package handler exposes the customer HTTP endpoints.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	"github.com/GreenD94/ladingburger-sub002/internal/api/customer/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/customer/models"
	customersvc "github.com/GreenD94/ladingburger-sub002/internal/api/customer/service"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

// UserHandler carries the customer CRUD endpoints plus phone lookup.
type UserHandler struct {
	*basehdl.BaseHandler[models.User, dto.UserCreateInput, dto.UserUpdateInput]
	service *customersvc.UserService
}

// NewUserHandler wires the handler.
func NewUserHandler(service *customersvc.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, dto.UserCreateInput, dto.UserUpdateInput](service),
		service:     service,
	}
}

// HandleAddTag attaches a tag to a customer. Re-adding an existing tag is a
// no-op.
func (h *UserHandler) HandleAddTag(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.UserTagInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.service.AddTag(c.Context(), input.PhoneNumber, input.Tag)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleFindByPhone returns the customer behind ?phone=.
func (h *UserHandler) HandleFindByPhone(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		phone := c.Query("phone")
		if phone == "" {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "se requiere el parámetro phone", common.StatusBadRequest, nil))
			return nil
		}

		user, err := h.service.FindByPhone(c.Context(), phone)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

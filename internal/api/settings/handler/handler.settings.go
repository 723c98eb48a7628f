// Package handler exposes the settings HTTP endpoints.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	"github.com/GreenD94/ladingburger-sub002/internal/api/settings/dto"
	settingssvc "github.com/GreenD94/ladingburger-sub002/internal/api/settings/service"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// SettingsHandler exposes the singleton settings document. No generic CRUD
// here: the document is always read and written through Get and Update.
type SettingsHandler struct {
	service  *settingssvc.SettingsService
	contacts *settingssvc.BusinessContactService
}

// NewSettingsHandler wires the handler.
func NewSettingsHandler(service *settingssvc.SettingsService, contacts *settingssvc.BusinessContactService) *SettingsHandler {
	return &SettingsHandler{
		service:  service,
		contacts: contacts,
	}
}

// HandleGet returns the current settings, creating defaults on first read.
func (h *SettingsHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		settings, err := h.service.Get(c.Context())
		basehdl.HandleResponse(c, settings, err)
		return nil
	})
}

// HandleUpdate applies a partial settings update.
func (h *SettingsHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.SettingsUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		settings, err := h.service.Update(c.Context(), input)
		if err == nil {
			logger.LogCRUD("update", "settings", settings.ID.Hex(), c, nil)
		}
		basehdl.HandleResponse(c, settings, err)
		return nil
	})
}

// HandlePublicContacts returns the enabled contact channels for the
// storefront footer.
func (h *SettingsHandler) HandlePublicContacts(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		contacts, err := h.contacts.FindEnabled(c.Context())
		basehdl.HandleResponse(c, contacts, err)
		return nil
	})
}

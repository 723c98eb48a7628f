// Package handler exposes the tag HTTP endpoints.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/models"
	etiquetasvc "github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/service"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// EtiquetaHandler carries the tag CRUD endpoints. Updates go through the
// guarded service method instead of the generic one so system-managed tags
// stay protected.
type EtiquetaHandler struct {
	*basehdl.BaseHandler[models.Etiqueta, dto.EtiquetaCreateInput, dto.EtiquetaUpdateInput]
	service *etiquetasvc.EtiquetaService
}

// NewEtiquetaHandler wires the handler.
func NewEtiquetaHandler(service *etiquetasvc.EtiquetaService) *EtiquetaHandler {
	return &EtiquetaHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Etiqueta, dto.EtiquetaCreateInput, dto.EtiquetaUpdateInput](service),
		service:     service,
	}
}

// UpdateById overrides the generic update with the system-managed guard.
func (h *EtiquetaHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basesvc.EnsureObjectID(c.Params("id"))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.EtiquetaUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		tag, err := h.service.Update(c.Context(), id, input)
		if err == nil {
			logger.LogCRUD("update", "etiqueta", id.Hex(), c, nil)
		}
		basehdl.HandleResponse(c, tag, err)
		return nil
	})
}

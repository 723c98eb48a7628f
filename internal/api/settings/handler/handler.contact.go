package handler

import (
	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	"github.com/GreenD94/ladingburger-sub002/internal/api/settings/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/settings/models"
	settingssvc "github.com/GreenD94/ladingburger-sub002/internal/api/settings/service"
)

// BusinessContactHandler carries the contact channel CRUD endpoints.
type BusinessContactHandler struct {
	*basehdl.BaseHandler[models.BusinessContact, dto.BusinessContactCreateInput, dto.BusinessContactUpdateInput]
	service *settingssvc.BusinessContactService
}

// NewBusinessContactHandler wires the handler.
func NewBusinessContactHandler(service *settingssvc.BusinessContactService) *BusinessContactHandler {
	return &BusinessContactHandler{
		BaseHandler: basehdl.NewBaseHandler[models.BusinessContact, dto.BusinessContactCreateInput, dto.BusinessContactUpdateInput](service),
		service:     service,
	}
}

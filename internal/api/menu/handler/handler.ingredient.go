package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/menu/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/menu/models"
	menusvc "github.com/GreenD94/ladingburger-sub002/internal/api/menu/service"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// IngredientHandler carries the ingredient CRUD endpoints plus the plain
// REST surface the kitchen dashboard consumes.
type IngredientHandler struct {
	*basehdl.BaseHandler[models.Ingredient, dto.IngredientCreateInput, dto.IngredientUpdateInput]
	service *menusvc.IngredientService
}

// NewIngredientHandler wires the handler.
func NewIngredientHandler(service *menusvc.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Ingredient, dto.IngredientCreateInput, dto.IngredientUpdateInput](service),
		service:     service,
	}
}

// HandleList returns the full ingredient catalog.
func (h *IngredientHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		ingredients, err := h.service.Find(c.Context(), nil, nil)
		basehdl.HandleResponse(c, ingredients, err)
		return nil
	})
}

// HandleCreate inserts one ingredient.
func (h *IngredientHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.IngredientCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		ingredient, err := h.service.InsertOne(c.Context(), models.Ingredient{
			Name:     input.Name,
			Cost:     input.Cost,
			Unit:     input.Unit,
			Category: input.Category,
		})
		if err == nil {
			logger.LogCRUD("create", "ingredient", ingredient.ID.Hex(), c, nil)
		}
		basehdl.HandleResponse(c, ingredient, err)
		return nil
	})
}

// HandleUpdate updates one ingredient by path id, applying only the fields
// present in the payload.
func (h *IngredientHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basesvc.EnsureObjectID(c.Params("id"))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input dto.IngredientUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		set := bson.M{}
		if input.Name != "" {
			set["name"] = input.Name
		}
		if input.Cost != nil {
			set["cost"] = *input.Cost
		}
		if input.Unit != "" {
			set["unit"] = input.Unit
		}
		if input.Category != "" {
			set["category"] = input.Category
		}

		ingredient, err := h.service.UpdateById(c.Context(), id, basesvc.UpdateData{Set: set})
		if err == nil {
			logger.LogCRUD("update", "ingredient", id.Hex(), c, nil)
		}
		basehdl.HandleResponse(c, ingredient, err)
		return nil
	})
}

// HandleDelete removes one ingredient by path id.
func (h *IngredientHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basesvc.EnsureObjectID(c.Params("id"))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.DeleteById(c.Context(), id)
		if err == nil {
			logger.LogCRUD("delete", "ingredient", id.Hex(), c, nil)
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

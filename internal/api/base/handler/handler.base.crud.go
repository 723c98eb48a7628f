package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

// Generic CRUD endpoints. Every endpoint wraps its body in SafeHandler and
// funnels the result through HandleResponse, so the envelope and error
// mapping stay identical across domains.

// InsertOne handles POST /insert-one: validates the CreateInput DTO,
// transforms it into the model and inserts.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input CreateInput
		if err := ParseRequestBody(c, &input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}
		if err := ValidateInput(input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		model, err := transformCreateInput[Model](input)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.Service.InsertOne(c.Context(), model)
		HandleResponse(c, data, err)
		return nil
	})
}

// Find handles GET /find with ?filter=, ?sort=, ?limit=, ?skip=.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ParseFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.Service.Find(c.Context(), filter, ParseFindOptions(c))
		if err == nil && data == nil {
			data = []Model{}
		}
		HandleResponse(c, data, err)
		return nil
	})
}

// FindOne handles GET /find-one with ?filter=.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ParseFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.Service.FindOne(c.Context(), filter, nil)
		HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById handles GET /find-by-id/:id.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := basesvc.EnsureObjectID(c.Params("id"))
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.Service.FindOneById(c.Context(), id)
		HandleResponse(c, data, err)
		return nil
	})
}

// FindManyByIds handles POST /find-by-ids with body {"ids": [...]}.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) FindManyByIds(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var body struct {
			IDs []string `json:"ids"`
		}
		if err := ParseRequestBody(c, &body); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		ids := make([]interface{}, 0, len(body.IDs))
		for _, raw := range body.IDs {
			id, err := basesvc.EnsureObjectID(raw)
			if err != nil {
				HandleResponse(c, nil, err)
				return nil
			}
			ids = append(ids, id)
		}

		data, err := h.Service.Find(c.Context(), bson.M{"_id": bson.M{"$in": ids}}, nil)
		if err == nil && data == nil {
			data = []Model{}
		}
		HandleResponse(c, data, err)
		return nil
	})
}

// FindWithPagination handles GET /find-with-pagination?page=&limit=.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ParseFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		page := fiber.Query[int64](c, "page", 1)
		limit := fiber.Query[int64](c, "limit", 10)

		data, err := h.Service.FindWithPagination(c.Context(), filter, page, limit, ParseFindOptions(c))
		HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById handles PUT /update-by-id/:id. The UpdateInput DTO is
// validated and applied as a $set of its non-empty fields.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := basesvc.EnsureObjectID(c.Params("id"))
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		var input UpdateInput
		if err := ParseRequestBody(c, &input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}
		if err := ValidateInput(input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		set, err := updateSetFromInput(input)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.Service.UpdateById(c.Context(), id, basesvc.UpdateData{Set: set})
		HandleResponse(c, data, err)
		return nil
	})
}

// UpdateOne handles PUT /update-one with ?filter= and an UpdateInput body.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) UpdateOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ParseFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		var input UpdateInput
		if err := ParseRequestBody(c, &input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}
		if err := ValidateInput(input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		set, err := updateSetFromInput(input)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.Service.UpdateOne(c.Context(), filter, basesvc.UpdateData{Set: set})
		HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById handles DELETE /delete-by-id/:id.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := basesvc.EnsureObjectID(c.Params("id"))
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		err = h.Service.DeleteById(c.Context(), id)
		HandleResponse(c, nil, err)
		return nil
	})
}

// DeleteOne handles DELETE /delete-one with ?filter=.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) DeleteOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ParseFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}
		if len(filter) == 0 {
			HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "se requiere un filtro", common.StatusBadRequest, nil))
			return nil
		}

		err = h.Service.DeleteOne(c.Context(), filter)
		HandleResponse(c, nil, err)
		return nil
	})
}

// CountDocuments handles GET /count with ?filter=.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ParseFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.Service.CountDocuments(c.Context(), filter)
		HandleResponse(c, map[string]int64{"count": count}, err)
		return nil
	})
}

// Distinct handles GET /distinct?field=name with ?filter=.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) Distinct(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		field := c.Query("field")
		if field == "" {
			HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "se requiere el parámetro field", common.StatusBadRequest, nil))
			return nil
		}

		filter, err := h.ParseFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		values, err := h.Service.Distinct(c.Context(), field, filter)
		HandleResponse(c, values, err)
		return nil
	})
}

// Upsert handles POST /upsert-one with ?filter= and a CreateInput body.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) Upsert(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ParseFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}
		if len(filter) == 0 {
			HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "se requiere un filtro", common.StatusBadRequest, nil))
			return nil
		}

		var input CreateInput
		if err := ParseRequestBody(c, &input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}
		if err := ValidateInput(input); err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		model, err := transformCreateInput[Model](input)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.Service.Upsert(c.Context(), filter, model)
		HandleResponse(c, data, err)
		return nil
	})
}

// DocumentExists handles GET /exists with ?filter=.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ParseFilter(c)
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		exists, err := h.Service.DocumentExists(c.Context(), filter)
		HandleResponse(c, map[string]bool{"exists": exists}, err)
		return nil
	})
}

// updateSetFromInput converts an update DTO into a $set map carrying only
// the fields the client actually sent (zero values with omitempty drop out
// of the JSON round trip).
func updateSetFromInput(input interface{}) (map[string]interface{}, error) {
	model, err := transformCreateInput[map[string]interface{}](input)
	if err != nil {
		return nil, err
	}
	delete(model, "_id")
	delete(model, "id")
	delete(model, "createdAt")
	return model, nil
}

package handler

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

// FilterOptions bounds what clients may express in the ?filter= query
// parameter.
type FilterOptions struct {
	MaxFields    int
	DeniedFields []string
	AllowedOps   []string
}

// DefaultFilterOptions denies credential-bearing fields and caps the filter
// at 10 fields.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		MaxFields:    10,
		DeniedFields: []string{"password", "passwordHash", "token", "secret", "key", "hash"},
		AllowedOps:   []string{"$eq", "$ne", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists", "$regex", "$and", "$or"},
	}
}

// BaseHandler carries the generic CRUD endpoints for one model. CreateInput
// and UpdateInput are the DTO types accepted on write paths; both are
// validated with the shared validator before they reach the service.
type BaseHandler[Model any, CreateInput any, UpdateInput any] struct {
	Service       basesvc.BaseServiceMongo[Model]
	FilterOptions FilterOptions
}

// NewBaseHandler wires a base handler over a service.
func NewBaseHandler[Model any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[Model]) *BaseHandler[Model, CreateInput, UpdateInput] {
	return &BaseHandler[Model, CreateInput, UpdateInput]{
		Service:       service,
		FilterOptions: DefaultFilterOptions(),
	}
}

// =====================================================
// Request parsing
// =====================================================

// ParseRequestBody decodes the JSON body into target. UseNumber keeps
// numeric precision until the bson layer decides the concrete type.
func ParseRequestBody(c fiber.Ctx, target interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return common.NewError(common.ErrCodeValidationInput, "el cuerpo de la solicitud está vacío", common.StatusBadRequest, nil)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	return nil
}

// ValidateInput runs the shared validator over a DTO.
func ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// transformCreateInput converts a validated DTO into the model through a
// JSON round trip, so only fields the model declares survive.
func transformCreateInput[Model any](input interface{}) (Model, error) {
	var model Model

	raw, err := json.Marshal(input)
	if err != nil {
		return model, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	if err := json.Unmarshal(raw, &model); err != nil {
		return model, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	return model, nil
}

// =====================================================
// Filter processing
// =====================================================

// ParseFilter reads the ?filter= query parameter (JSON), validates it
// against the handler's filter options and normalizes id fields into
// ObjectIDs. An absent parameter yields an empty filter.
func (h *BaseHandler[Model, CreateInput, UpdateInput]) ParseFilter(c fiber.Ctx) (bson.M, error) {
	raw := c.Query("filter")
	if raw == "" {
		return bson.M{}, nil
	}

	var filter map[string]interface{}
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&filter); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "filtro inválido", common.StatusBadRequest, err.Error())
	}

	if err := h.validateFilter(filter, 0); err != nil {
		return nil, err
	}

	return normalizeFilter(filter), nil
}

func (h *BaseHandler[Model, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}, depth int) error {
	if depth > 3 {
		return common.NewError(common.ErrCodeValidationInput, "filtro demasiado anidado", common.StatusBadRequest, nil)
	}
	if h.FilterOptions.MaxFields > 0 && len(filter) > h.FilterOptions.MaxFields {
		return common.NewError(common.ErrCodeValidationInput, "el filtro tiene demasiados campos", common.StatusBadRequest, nil)
	}

	for key, value := range filter {
		lower := strings.ToLower(key)
		for _, denied := range h.FilterOptions.DeniedFields {
			if strings.Contains(lower, strings.ToLower(denied)) {
				return common.NewError(common.ErrCodeValidationInput, "el filtro contiene un campo no permitido", common.StatusBadRequest, key)
			}
		}

		if strings.HasPrefix(key, "$") && !utilityContains(h.FilterOptions.AllowedOps, key) {
			return common.NewError(common.ErrCodeValidationInput, "operador de filtro no permitido", common.StatusBadRequest, key)
		}

		if nested, ok := value.(map[string]interface{}); ok {
			if err := h.validateFilter(nested, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

func utilityContains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// normalizeFilter coerces hex strings into ObjectIDs for _id and *Id fields
// and unwraps extended-JSON {"$oid": "..."} values, recursively.
func normalizeFilter(filter map[string]interface{}) bson.M {
	normalized := bson.M{}
	for key, value := range filter {
		normalized[key] = normalizeFilterValue(key, value)
	}
	return normalized
}

func normalizeFilterValue(key string, value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if isIDField(key) {
			if objID, err := primitive.ObjectIDFromHex(v); err == nil {
				return objID
			}
		}
		return v
	case map[string]interface{}:
		if oid, ok := v["$oid"].(string); ok && len(v) == 1 {
			if objID, err := primitive.ObjectIDFromHex(oid); err == nil {
				return objID
			}
		}
		nested := bson.M{}
		for k, inner := range v {
			// Operators keep the parent field's id semantics
			// ({"userId": {"$in": [...]}}).
			fieldKey := k
			if strings.HasPrefix(k, "$") {
				fieldKey = key
			}
			nested[k] = normalizeFilterValue(fieldKey, inner)
		}
		return nested
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, inner := range v {
			out[i] = normalizeFilterValue(key, inner)
		}
		return out
	default:
		return v
	}
}

func isIDField(key string) bool {
	return key == "_id" || key == "id" || strings.HasSuffix(key, "Id")
}

// =====================================================
// Query options
// =====================================================

// ParseFindOptions builds Mongo find options from query parameters:
// ?sort=field&order=desc&limit=50&skip=0&projection=a,b,c
func ParseFindOptions(c fiber.Ctx) *options.FindOptions {
	opts := options.Find()

	if sort := c.Query("sort"); sort != "" {
		order := 1
		if strings.EqualFold(c.Query("order"), "desc") {
			order = -1
		}
		opts.SetSort(bson.D{{Key: sort, Value: order}})
	}

	if limit := fiber.Query[int64](c, "limit"); limit > 0 {
		if limit > 1000 {
			limit = 1000
		}
		opts.SetLimit(limit)
	}

	if skip := fiber.Query[int64](c, "skip"); skip > 0 {
		opts.SetSkip(skip)
	}

	if projection := c.Query("projection"); projection != "" {
		fields := bson.M{}
		for _, field := range strings.Split(projection, ",") {
			if field = strings.TrimSpace(field); field != "" {
				fields[field] = 1
			}
		}
		opts.SetProjection(fields)
	}

	return opts
}

// Package service implements the generic MongoDB CRUD layer every domain
// service embeds. All documents get UnixMilli createdAt/updatedAt stamps,
// decode failures at the persistence boundary surface as structured errors
// instead of silently defaulting, and records flagged isSystemManaged are
// protected from deletion.
package service

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/GreenD94/ladingburger-sub002/internal/api/base/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/utility"
)

// UpdateData describes a structured update. Only non-nil parts are sent to
// the database, keyed by their operator.
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"`
	Unset       map[string]interface{} `bson:"$unset,omitempty"`
	Push        map[string]interface{} `bson:"$push,omitempty"`
}

// BaseServiceMongo is the CRUD contract domain services build on.
type BaseServiceMongo[Model any] interface {
	InsertOne(ctx context.Context, data Model) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, page int64, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update UpdateData) (Model, error)
	UpdateOne(ctx context.Context, filter interface{}, update UpdateData) (Model, error)
	Upsert(ctx context.Context, filter interface{}, data Model) (Model, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	DeleteOne(ctx context.Context, filter interface{}) error
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl implements BaseServiceMongo over one collection.
type BaseServiceMongoImpl[Model any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo creates the base service for a collection. The
// collection handle comes from the injected database store; this package
// never reaches for globals.
func NewBaseServiceMongo[Model any](collection *mongo.Collection) *BaseServiceMongoImpl[Model] {
	if collection == nil {
		panic("NewBaseServiceMongo: collection must not be nil")
	}
	return &BaseServiceMongoImpl[Model]{
		collection: collection,
	}
}

// Collection exposes the underlying handle for aggregation pipelines that
// the generic CRUD surface does not cover.
func (s *BaseServiceMongoImpl[Model]) Collection() *mongo.Collection {
	return s.collection
}

// =====================================================
// Insert
// =====================================================

// InsertOne converts the model to a document, applies `default:` tag values
// for zero fields, stamps createdAt/updatedAt and inserts it. The stored
// document is read back so callers get exactly what persisted.
func (s *BaseServiceMongoImpl[Model]) InsertOne(ctx context.Context, data Model) (Model, error) {
	var zero Model

	doc, err := toDocument(data)
	if err != nil {
		return zero, err
	}

	applyDefaultTags(data, doc)

	now := utility.CurrentTimeInMilli()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	delete(doc, "_id")

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return zero, common.ErrMongoWrite
	}

	return s.FindOneById(ctx, insertedID)
}

// =====================================================
// Read
// =====================================================

// Find returns every document matching filter.
func (s *BaseServiceMongoImpl[Model]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []Model
	for cursor.Next(ctx) {
		var item Model
		if err := cursor.Decode(&item); err != nil {
			return nil, decodeError(err)
		}
		results = append(results, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return results, nil
}

// FindOne returns the first document matching filter.
func (s *BaseServiceMongoImpl[Model]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error) {
	var result Model

	err := s.collection.FindOne(ctx, filter, opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return result, common.ErrNotFound
		}
		return result, decodeError(err)
	}

	return result, nil
}

// FindOneById returns the document with the given id.
func (s *BaseServiceMongoImpl[Model]) FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindManyByIds returns every document whose id is in ids.
func (s *BaseServiceMongoImpl[Model]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]Model, error) {
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// FindWithPagination returns one page of matching documents plus totals.
// Limit is clamped to 1000 to protect the server from unbounded reads.
func (s *BaseServiceMongoImpl[Model]) FindWithPagination(ctx context.Context, filter interface{}, page int64, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error) {
	if filter == nil {
		filter = bson.M{}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 1000 {
		limit = 1000
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if opts == nil {
		opts = options.Find()
	}
	opts.SetSkip((page - 1) * limit)
	opts.SetLimit(limit)

	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Model{}
	}

	totalPage := total / limit
	if total%limit != 0 {
		totalPage++
	}

	return &basemodels.PaginateResult[Model]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// =====================================================
// Update
// =====================================================

// UpdateById applies a structured update to the document with the given id
// and returns the updated document.
func (s *BaseServiceMongoImpl[Model]) UpdateById(ctx context.Context, id primitive.ObjectID, update UpdateData) (Model, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, update)
}

// UpdateOne applies a structured update to the first matching document and
// returns it post-update. updatedAt is always refreshed.
func (s *BaseServiceMongoImpl[Model]) UpdateOne(ctx context.Context, filter interface{}, update UpdateData) (Model, error) {
	var zero Model

	if update.Set == nil {
		update.Set = map[string]interface{}{}
	}
	update.Set["updatedAt"] = utility.CurrentTimeInMilli()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var result Model
	err := s.collection.FindOneAndUpdate(ctx, filter, buildUpdateDocument(update), opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrNotFound
		}
		return zero, decodeError(err)
	}

	return result, nil
}

// Upsert replaces the first document matching filter with data, inserting
// it when absent. createdAt is only set on insert.
func (s *BaseServiceMongoImpl[Model]) Upsert(ctx context.Context, filter interface{}, data Model) (Model, error) {
	var zero Model

	doc, err := toDocument(data)
	if err != nil {
		return zero, err
	}
	delete(doc, "_id")
	delete(doc, "createdAt")
	doc["updatedAt"] = utility.CurrentTimeInMilli()

	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"createdAt": utility.CurrentTimeInMilli()},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result Model
	err = s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	if err != nil {
		return zero, decodeError(err)
	}

	return result, nil
}

// =====================================================
// Delete
// =====================================================

// DeleteById removes the document with the given id. System-managed
// documents are protected.
func (s *BaseServiceMongoImpl[Model]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// isTrue reports whether a raw bson value holds the boolean true.
func isTrue(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}

// DeleteOne removes the first document matching filter. A document flagged
// isSystemManaged or isSystemCreated is never deleted.
func (s *BaseServiceMongoImpl[Model]) DeleteOne(ctx context.Context, filter interface{}) error {
	var raw bson.M
	err := s.collection.FindOne(ctx, filter).Decode(&raw)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return common.ErrNotFound
		}
		return common.ConvertMongoError(err)
	}

	if isTrue(raw["isSystemManaged"]) || isTrue(raw["isSystemCreated"]) {
		return common.ErrSystemManaged
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": raw["_id"]})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}

	return nil
}

// =====================================================
// Other
// =====================================================

// CountDocuments counts documents matching filter.
func (s *BaseServiceMongoImpl[Model]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// Distinct returns the distinct values of a field across matching documents.
func (s *BaseServiceMongoImpl[Model]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if filter == nil {
		filter = bson.M{}
	}
	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

// DocumentExists reports whether any document matches filter.
func (s *BaseServiceMongoImpl[Model]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

// =====================================================
// Helpers
// =====================================================

// toDocument converts a model into a bson map through the driver's own
// marshaller, so bson tags stay authoritative.
func toDocument(data interface{}) (bson.M, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	return doc, nil
}

// buildUpdateDocument turns UpdateData into the operator document sent to
// the database.
func buildUpdateDocument(update UpdateData) bson.M {
	doc := bson.M{}
	if len(update.Set) > 0 {
		doc["$set"] = update.Set
	}
	if len(update.SetOnInsert) > 0 {
		doc["$setOnInsert"] = update.SetOnInsert
	}
	if len(update.Unset) > 0 {
		doc["$unset"] = update.Unset
	}
	if len(update.Push) > 0 {
		doc["$push"] = update.Push
	}
	return doc
}

// applyDefaultTags fills zero-valued fields carrying a `default:` tag before
// insert, e.g. Priority string `bson:"priority" default:"normal"`.
func applyDefaultTags(data interface{}, doc bson.M) {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		defaultValue := field.Tag.Get("default")
		if defaultValue == "" {
			continue
		}

		bsonName := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonName == "" || bsonName == "-" {
			continue
		}

		if !v.Field(i).IsZero() {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			doc[bsonName] = defaultValue
		case reflect.Bool:
			doc[bsonName] = defaultValue == "true"
		case reflect.Int, reflect.Int32, reflect.Int64:
			if n, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
				doc[bsonName] = n
			}
		case reflect.Float32, reflect.Float64:
			if f, err := strconv.ParseFloat(defaultValue, 64); err == nil {
				doc[bsonName] = f
			}
		}
	}
}

// decodeError wraps a decode failure so schema drift in stored documents is
// visible instead of silently coerced.
func decodeError(err error) error {
	if mongo.IsDuplicateKeyError(err) || mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return common.ConvertMongoError(err)
	}
	if _, ok := err.(mongo.CommandError); ok {
		return common.ConvertMongoError(err)
	}
	if strings.Contains(err.Error(), "cannot decode") || strings.Contains(err.Error(), "error decoding") {
		return common.NewError(common.ErrCodeValidationFormat, common.ErrMongoDecode.Error(), common.StatusInternalServerError, err.Error())
	}
	return common.ConvertMongoError(err)
}

// EnsureObjectID parses a hex id, returning a structured error when invalid.
func EnsureObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("id inválido: %s", id), common.StatusBadRequest, nil)
	}
	return objID, nil
}

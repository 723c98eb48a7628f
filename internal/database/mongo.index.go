package database

import (
	"context"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// indexSpec is one index derived from a model struct tag.
type indexSpec struct {
	Field  string
	Unique bool
	Sparse bool
}

// CreateIndexes creates the indexes declared on the model through `index:`
// struct tags. The field name comes from the bson tag. Supported options:
// "unique" and "sparse", comma separated, e.g.
//
//	Email string `bson:"email" index:"unique,sparse"`
//
// Index creation is idempotent on the server side; errors are logged and
// returned but a duplicate index definition is not an error.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	specs := parseIndexTags(reflect.TypeOf(model))
	if len(specs) == 0 {
		return nil
	}

	indexModels := make([]mongo.IndexModel, 0, len(specs))
	for _, spec := range specs {
		opts := options.Index()
		if spec.Unique {
			opts.SetUnique(true)
		}
		if spec.Sparse {
			opts.SetSparse(true)
		}
		indexModels = append(indexModels, mongo.IndexModel{
			Keys:    bson.D{{Key: spec.Field, Value: 1}},
			Options: opts,
		})
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		logger.GetAppLogger().WithError(err).
			WithField("collection", collection.Name()).
			Error("Failed to create indexes")
		return err
	}

	return nil
}

func parseIndexTags(t reflect.Type) []indexSpec {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var specs []indexSpec
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		indexTag := field.Tag.Get("index")
		if indexTag == "" {
			continue
		}

		bsonName := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonName == "" || bsonName == "-" {
			continue
		}

		spec := indexSpec{Field: bsonName}
		for _, opt := range strings.Split(indexTag, ",") {
			switch strings.TrimSpace(opt) {
			case "unique":
				spec.Unique = true
			case "sparse":
				spec.Sparse = true
			}
		}
		specs = append(specs, spec)
	}

	return specs
}

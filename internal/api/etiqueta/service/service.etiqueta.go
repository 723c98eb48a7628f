// Package service implements the tag business logic.
package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

// EtiquetaService manages customer tags.
type EtiquetaService struct {
	*basesvc.BaseServiceMongoImpl[models.Etiqueta]
}

// NewEtiquetaService creates the service over the etiquetas collection.
func NewEtiquetaService(store *database.Store) *EtiquetaService {
	return &EtiquetaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Etiqueta](store.Collection(global.ColNames.Etiquetas)),
	}
}

// ValidateTagUpdate rejects edits that rename or disable a system-managed
// tag. Color changes are allowed on any tag.
func ValidateTagUpdate(tag models.Etiqueta, input dto.EtiquetaUpdateInput) error {
	if !tag.IsSystemManaged {
		return nil
	}
	if input.Name != "" && input.Name != tag.Name {
		return common.ErrSystemManaged
	}
	if input.IsEnabled != nil && !*input.IsEnabled {
		return common.ErrSystemManaged
	}
	return nil
}

// Update applies a tag edit, enforcing the system-managed guard.
func (s *EtiquetaService) Update(ctx context.Context, id primitive.ObjectID, input dto.EtiquetaUpdateInput) (models.Etiqueta, error) {
	tag, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.Etiqueta{}, err
	}

	if err := ValidateTagUpdate(tag, input); err != nil {
		return models.Etiqueta{}, err
	}

	set := bson.M{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Color != "" {
		set["color"] = input.Color
	}
	if input.IsEnabled != nil {
		set["isEnabled"] = *input.IsEnabled
	}
	if len(set) == 0 {
		return tag, nil
	}

	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
}

// EnsureSystemTag upserts a system-managed tag by ref. Used at bootstrap so
// restarts never duplicate the built-in tags.
func (s *EtiquetaService) EnsureSystemTag(ctx context.Context, ref, name, color string) (models.Etiqueta, error) {
	existing, err := s.FindOne(ctx, bson.M{"ref": ref}, nil)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.Etiqueta{}, err
	}

	return s.InsertOne(ctx, models.Etiqueta{
		Ref:             ref,
		Name:            name,
		Color:           color,
		IsEnabled:       true,
		IsSystemManaged: true,
		IsSystemCreated: true,
	})
}

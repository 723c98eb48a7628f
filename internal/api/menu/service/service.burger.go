// Package service implements the menu business logic: burgers, ingredients,
// costing and seed data.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/menu/models"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

// BurgerService manages the burger menu.
type BurgerService struct {
	*basesvc.BaseServiceMongoImpl[models.Burger]
}

// NewBurgerService creates the service over the burgers collection.
func NewBurgerService(store *database.Store) *BurgerService {
	return &BurgerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Burger](store.Collection(global.ColNames.Burgers)),
	}
}

// FindAvailable returns the burgers customers can currently order.
func (s *BurgerService) FindAvailable(ctx context.Context) ([]models.Burger, error) {
	return s.Find(ctx, bson.M{"isAvailable": true}, nil)
}

// FindAvailableByID returns the available burgers keyed by id, for order
// creation to resolve prices server-side.
func (s *BurgerService) FindAvailableByID(ctx context.Context) (map[primitive.ObjectID]models.Burger, error) {
	burgers, err := s.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Burger, len(burgers))
	for _, b := range burgers {
		byID[b.ID] = b
	}
	return byID, nil
}

// SetAvailability toggles a burger on or off the public menu.
func (s *BurgerService) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) (models.Burger, error) {
	return s.UpdateById(ctx, id, basesvc.UpdateData{
		Set: bson.M{"isAvailable": available},
	})
}

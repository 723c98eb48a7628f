package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/settings/models"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

// BusinessContactService manages the public contact channels.
type BusinessContactService struct {
	*basesvc.BaseServiceMongoImpl[models.BusinessContact]
}

// NewBusinessContactService creates the service over the businessContacts
// collection.
func NewBusinessContactService(store *database.Store) *BusinessContactService {
	return &BusinessContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.BusinessContact](store.Collection(global.ColNames.BusinessContacts)),
	}
}

// FindEnabled returns the contact channels shown on the storefront.
func (s *BusinessContactService) FindEnabled(ctx context.Context) ([]models.BusinessContact, error) {
	return s.Find(ctx, bson.M{"isEnabled": true}, nil)
}

// Package service implements the customer business logic.
package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/customer/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

// TagNewCustomer is the system tag stamped on customers created implicitly
// by their first order.
const TagNewCustomer = "Nuevo"

// UserService manages customer records.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService creates the service over the users collection.
func NewUserService(store *database.Store) *UserService {
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](store.Collection(global.ColNames.Users)),
	}
}

// NormalizePhone trims whitespace from a phone number. Format validation is
// handled by the phone_number validator on the DTOs.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// FindByPhone returns the customer behind a phone number.
func (s *UserService) FindByPhone(ctx context.Context, phone string) (models.User, error) {
	return s.FindOne(ctx, bson.M{"phoneNumber": NormalizePhone(phone)}, nil)
}

// GetOrCreateByPhone returns the customer behind a phone number, creating
// the record with the new-customer tag when none exists. A concurrent
// creation losing the unique-index race falls back to re-reading the winner.
func (s *UserService) GetOrCreateByPhone(ctx context.Context, phone string, name string) (models.User, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return models.User{}, common.ErrRequiredField
	}

	user, err := s.FindByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.User{}, err
	}

	user, err = s.InsertOne(ctx, models.User{
		PhoneNumber: phone,
		Name:        name,
		Tags:        []string{TagNewCustomer},
	})
	if err != nil {
		if common.IsDuplicateError(err) {
			return s.FindByPhone(ctx, phone)
		}
		return models.User{}, err
	}
	return user, nil
}

// AddTag appends a tag to a customer if not already present.
func (s *UserService) AddTag(ctx context.Context, phone string, tag string) (models.User, error) {
	user, err := s.FindByPhone(ctx, phone)
	if err != nil {
		return models.User{}, err
	}

	for _, existing := range user.Tags {
		if existing == tag {
			return user, nil
		}
	}

	return s.UpdateById(ctx, user.ID, basesvc.UpdateData{
		Push: bson.M{"tags": tag},
	})
}

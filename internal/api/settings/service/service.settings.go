// Package service implements the settings business logic.
package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/api/settings/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/settings/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

// settingsRef pins the singleton settings document.
const settingsRef = "main"

// DefaultSettings returns the storefront defaults used before anyone saves
// a configuration.
func DefaultSettings() models.Settings {
	return models.Settings{
		Ref:            settingsRef,
		MenuTheme:      "classic",
		AdminThemeMode: "light",
		Language:       "es",
	}
}

// ApplySettingsUpdate merges a partial update into the current settings.
// Absent fields keep their stored values.
func ApplySettingsUpdate(current models.Settings, input dto.SettingsUpdateInput) models.Settings {
	if input.MenuTheme != "" {
		current.MenuTheme = input.MenuTheme
	}
	if input.AdminThemeMode != "" {
		current.AdminThemeMode = input.AdminThemeMode
	}
	if input.Language != "" {
		current.Language = input.Language
	}
	return current
}

// SettingsService manages the singleton settings document.
type SettingsService struct {
	*basesvc.BaseServiceMongoImpl[models.Settings]
}

// NewSettingsService creates the service over the settings collection.
func NewSettingsService(store *database.Store) *SettingsService {
	return &SettingsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Settings](store.Collection(global.ColNames.Settings)),
	}
}

// Get returns the stored settings, creating the document with defaults on
// first access.
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.FindOne(ctx, bson.M{"ref": settingsRef}, nil)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.Settings{}, err
	}

	created, err := s.InsertOne(ctx, DefaultSettings())
	if err != nil {
		if common.IsDuplicateError(err) {
			return s.FindOne(ctx, bson.M{"ref": settingsRef}, nil)
		}
		return models.Settings{}, err
	}
	return created, nil
}

// Update applies a partial update to the singleton, preserving every field
// the payload does not mention.
func (s *SettingsService) Update(ctx context.Context, input dto.SettingsUpdateInput) (models.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	merged := ApplySettingsUpdate(current, input)
	if merged == current {
		return current, nil
	}

	return s.UpdateById(ctx, current.ID, basesvc.UpdateData{Set: bson.M{
		"menuTheme":      merged.MenuTheme,
		"adminThemeMode": merged.AdminThemeMode,
		"language":       merged.Language,
	}})
}

package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	authdto "github.com/GreenD94/ladingburger-sub002/internal/api/auth/dto"
	customersvc "github.com/GreenD94/ladingburger-sub002/internal/api/customer/service"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// ensureDefaultData loads the records the system cannot run without: the
// first admin account, the system customer tags and the settings document.
// Every step is idempotent so restarts never duplicate anything.
func (a *application) ensureDefaultData(ctx context.Context) error {
	log := logger.GetAppLogger()

	// First admin, only when the collection is empty.
	count, err := a.admins.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		admin, err := a.admins.Register(ctx, authdto.AdminCreateInput{
			Email:    a.cfg.DefaultAdminEmail,
			Password: a.cfg.DefaultAdminPassword,
			Name:     "Administrador",
		})
		if err != nil {
			return err
		}
		log.WithField("email", admin.Email).Warn("default admin created, change the password")
	}

	// System customer tags.
	systemTags := []struct {
		ref, name, color string
	}{
		{"nuevo", customersvc.TagNewCustomer, "#4caf50"},
		{"frecuente", "Frecuente", "#2196f3"},
		{"vip", "VIP", "#ff9800"},
	}
	for _, tag := range systemTags {
		if _, err := a.etiquetas.EnsureSystemTag(ctx, tag.ref, tag.name, tag.color); err != nil {
			return err
		}
	}

	// Settings singleton with defaults.
	if _, err := a.settings.Get(ctx); err != nil {
		return err
	}

	log.Info("default data verified")
	return nil
}

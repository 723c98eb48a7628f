package main

import (
	"context"
	"time"

	"github.com/GreenD94/ladingburger-sub002/config"
	analyticssvc "github.com/GreenD94/ladingburger-sub002/internal/api/analytics/service"
	authmodels "github.com/GreenD94/ladingburger-sub002/internal/api/auth/models"
	authsvc "github.com/GreenD94/ladingburger-sub002/internal/api/auth/service"
	customermodels "github.com/GreenD94/ladingburger-sub002/internal/api/customer/models"
	customersvc "github.com/GreenD94/ladingburger-sub002/internal/api/customer/service"
	etiquetamodels "github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/models"
	etiquetasvc "github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/service"
	menumodels "github.com/GreenD94/ladingburger-sub002/internal/api/menu/models"
	menusvc "github.com/GreenD94/ladingburger-sub002/internal/api/menu/service"
	notificationsvc "github.com/GreenD94/ladingburger-sub002/internal/api/notification/service"
	ordermodels "github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
	ordersvc "github.com/GreenD94/ladingburger-sub002/internal/api/order/service"
	settingsmodels "github.com/GreenD94/ladingburger-sub002/internal/api/settings/models"
	settingssvc "github.com/GreenD94/ladingburger-sub002/internal/api/settings/service"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// application bundles the configuration, the database store and every
// domain service. All wiring happens here, at the entry point.
type application struct {
	cfg   *config.Configuration
	store *database.Store

	admins      *authsvc.AdminService
	burgers     *menusvc.BurgerService
	ingredients *menusvc.IngredientService
	seed        *menusvc.SeedService
	users       *customersvc.UserService
	orders      *ordersvc.OrderService
	etiquetas   *etiquetasvc.EtiquetaService
	settings    *settingssvc.SettingsService
	contacts    *settingssvc.BusinessContactService
	analytics   *analyticssvc.AnalyticsService
	whatsapp    *notificationsvc.WhatsAppService
}

// newApplication connects to the database and builds the service graph.
func newApplication(cfg *config.Configuration) (*application, error) {
	global.InitColNames()
	global.InitValidator()

	client, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	store := database.NewStore(client, cfg.MongoDB_DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.EnsureCollections(ctx, global.AllCollectionNames()); err != nil {
		return nil, err
	}
	if err := createIndexes(ctx, store); err != nil {
		return nil, err
	}

	app := &application{cfg: cfg, store: store}

	app.admins = authsvc.NewAdminService(store, cfg)
	app.burgers = menusvc.NewBurgerService(store)
	app.ingredients = menusvc.NewIngredientService(store)
	app.seed = menusvc.NewSeedService(app.burgers, app.ingredients)
	app.users = customersvc.NewUserService(store)
	app.orders = ordersvc.NewOrderService(store, app.burgers, app.users, cfg)
	app.etiquetas = etiquetasvc.NewEtiquetaService(store)
	app.settings = settingssvc.NewSettingsService(store)
	app.contacts = settingssvc.NewBusinessContactService(store)
	app.analytics = analyticssvc.NewAnalyticsService(store)
	app.whatsapp = notificationsvc.NewWhatsAppService(cfg)

	logger.GetAppLogger().Info("application services wired")
	return app, nil
}

// createIndexes declares the indexes of every collection from the model
// struct tags.
func createIndexes(ctx context.Context, store *database.Store) error {
	targets := []struct {
		collection string
		model      interface{}
	}{
		{global.ColNames.Admins, authmodels.Admin{}},
		{global.ColNames.Burgers, menumodels.Burger{}},
		{global.ColNames.Ingredients, menumodels.Ingredient{}},
		{global.ColNames.Users, customermodels.User{}},
		{global.ColNames.Orders, ordermodels.Order{}},
		{global.ColNames.Etiquetas, etiquetamodels.Etiqueta{}},
		{global.ColNames.Settings, settingsmodels.Settings{}},
	}

	for _, target := range targets {
		if err := database.CreateIndexes(ctx, store.Collection(target.collection), target.model); err != nil {
			return err
		}
	}
	return nil
}

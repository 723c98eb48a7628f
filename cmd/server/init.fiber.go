package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	analyticshdl "github.com/GreenD94/ladingburger-sub002/internal/api/analytics/handler"
	analyticsrouter "github.com/GreenD94/ladingburger-sub002/internal/api/analytics/router"
	authhdl "github.com/GreenD94/ladingburger-sub002/internal/api/auth/handler"
	authrouter "github.com/GreenD94/ladingburger-sub002/internal/api/auth/router"
	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	customerhdl "github.com/GreenD94/ladingburger-sub002/internal/api/customer/handler"
	customerrouter "github.com/GreenD94/ladingburger-sub002/internal/api/customer/router"
	etiquetahdl "github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/handler"
	etiquetarouter "github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/router"
	menuhdl "github.com/GreenD94/ladingburger-sub002/internal/api/menu/handler"
	menurouter "github.com/GreenD94/ladingburger-sub002/internal/api/menu/router"
	"github.com/GreenD94/ladingburger-sub002/internal/api/middleware"
	notificationhdl "github.com/GreenD94/ladingburger-sub002/internal/api/notification/handler"
	notificationrouter "github.com/GreenD94/ladingburger-sub002/internal/api/notification/router"
	orderhdl "github.com/GreenD94/ladingburger-sub002/internal/api/order/handler"
	orderrouter "github.com/GreenD94/ladingburger-sub002/internal/api/order/router"
	apirouter "github.com/GreenD94/ladingburger-sub002/internal/api/router"
	settingshdl "github.com/GreenD94/ladingburger-sub002/internal/api/settings/handler"
	settingsrouter "github.com/GreenD94/ladingburger-sub002/internal/api/settings/router"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// initFiberApp builds the Fiber app: base configuration, the middleware
// stack and every domain's routes.
func (a *application) initFiberApp() (*fiber.App, error) {
	log := logger.GetAppLogger()

	app := fiber.New(fiber.Config{
		AppName:       "Saborea API",
		ServerHeader:  "Saborea API",
		StrictRouting: false,
		CaseSensitive: true,
		BodyLimit:     5 * 1024 * 1024,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  30 * time.Second,
		IdleTimeout:   120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := common.MsgInternalError
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusNotFound, fiber.StatusConflict:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"code":   code,
				"path":   c.Path(),
				"method": c.Method(),
			}).Error(message)

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// Request IDs for tracing.
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
	}))

	// CORS before everything else so preflights never hit the rate limiter.
	var allowOrigins []string
	if a.cfg.CORS_Origins == "*" {
		allowOrigins = []string{"*"}
	} else {
		for _, origin := range strings.Split(a.cfg.CORS_Origins, ",") {
			allowOrigins = append(allowOrigins, strings.TrimSpace(origin))
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: a.cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// Security headers.
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// Rate limiting by IP.
	if a.cfg.RateLimit_Enabled && a.cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        a.cfg.RateLimit_Max,
			Expiration: time.Duration(a.cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": "Demasiadas solicitudes, intenta de nuevo más tarde",
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/api/v1/system/health" || c.Method() == "OPTIONS"
			},
		}))
		log.Infof("rate limiting enabled: %d requests per %d seconds", a.cfg.RateLimit_Max, a.cfg.RateLimit_Window)
	}

	// Panic recovery.
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic": fmt.Sprintf("%v", e),
				"path":  c.Path(),
			}).Error("panic recovered")
		},
	}))

	// Handlers.
	adminHandler := authhdl.NewAdminHandler(a.admins, a.cfg)
	burgerHandler := menuhdl.NewBurgerHandler(a.burgers, a.ingredients)
	ingredientHandler := menuhdl.NewIngredientHandler(a.ingredients)
	seedHandler := menuhdl.NewSeedHandler(a.seed)
	userHandler := customerhdl.NewUserHandler(a.users)
	orderHandler := orderhdl.NewOrderHandler(a.orders)
	etiquetaHandler := etiquetahdl.NewEtiquetaHandler(a.etiquetas)
	settingsHandler := settingshdl.NewSettingsHandler(a.settings, a.contacts)
	contactHandler := settingshdl.NewBusinessContactHandler(a.contacts)
	analyticsHandler := analyticshdl.NewAnalyticsHandler(a.analytics)
	whatsappHandler := notificationhdl.NewWhatsAppHandler(a.whatsapp, a.orders)

	auth := middleware.NewAuthManager(a.admins, a.cfg).RequireAdmin()

	// Health check, outside the domains.
	app.Get("/api/v1/system/health", basehdl.HealthCheck)

	err := apirouter.SetupRoutes(app, auth,
		authrouter.Register(adminHandler),
		menurouter.Register(burgerHandler, ingredientHandler, seedHandler),
		customerrouter.Register(userHandler),
		orderrouter.Register(orderHandler),
		etiquetarouter.Register(etiquetaHandler),
		settingsrouter.Register(settingsHandler, contactHandler),
		analyticsrouter.Register(analyticsHandler),
		notificationrouter.Register(whatsappHandler),
	)
	if err != nil {
		return nil, err
	}

	return app, nil
}

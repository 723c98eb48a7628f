// Package router wires domain routes into the Fiber app and provides the
// reusable CRUD route registration.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// NOTE on middleware registration: passing middleware directly in
// router.Get(path, middleware, handler) does not reliably run the middleware
// under Fiber v3. Always register through RegisterRouteWithMiddleware, which
// applies middleware with .Use() on a route group.

// CRUDHandler is the endpoint set a domain handler exposes for generic CRUD
// registration. The base handler satisfies it for every model.
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateOne(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteOne(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router registers routes, holding the auth middleware applied to protected
// endpoints.
type Router struct {
	app  *fiber.App
	auth fiber.Handler
}

// CRUDConfig toggles which CRUD operations a collection exposes.
type CRUDConfig struct {
	// Create
	InsOne bool

	// Read
	Find     bool
	FindOne  bool
	FindById bool
	FindIds  bool
	Paginate bool

	// Update
	UpdOne  bool
	UpdById bool

	// Delete
	DelOne  bool
	DelById bool

	// Other
	Count    bool
	Distinct bool
	Upsert   bool
	Exists   bool
}

// Shared per-collection configs.
var (
	// ReadOnlyConfig exposes only read endpoints.
	ReadOnlyConfig = CRUDConfig{
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		Count: true, Distinct: true, Exists: true,
	}

	// ReadWriteConfig exposes full CRUD.
	ReadWriteConfig = CRUDConfig{
		InsOne: true,
		Find:   true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdById: true,
		DelOne: true, DelById: true,
		Count: true, Distinct: true,
		Upsert: true, Exists: true,
	}
)

// RoutePrefix holds the base API prefixes.
type RoutePrefix struct {
	Base string // /api
	V1   string // /api/v1
}

// NewRoutePrefix returns the default prefixes.
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter creates a Router. auth is the middleware protecting admin
// routes.
func NewRouter(app *fiber.App, auth fiber.Handler) *Router {
	return &Router{
		app:  app,
		auth: auth,
	}
}

// Auth exposes the configured auth middleware for domain routers that
// register custom protected routes.
func (r *Router) Auth() fiber.Handler {
	return r.auth
}

// RegisterRouteWithMiddleware registers one route with its middleware chain
// applied through .Use() on a dedicated group (required under Fiber v3, see
// note at the top of the file).
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes registers the enabled CRUD routes for one collection
// under prefix, all protected by the auth middleware.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	auth := []fiber.Handler{r.auth}

	// Create operations
	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-one", auth, h.InsertOne)
	}

	// Read operations
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find", auth, h.Find)
	}
	if config.FindOne {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-one", auth, h.FindOne)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", auth, h.FindOneById)
	}
	if config.FindIds {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/find-by-ids", auth, h.FindManyByIds)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", auth, h.FindWithPagination)
	}

	// Update operations
	if config.UpdOne {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-one", auth, h.UpdateOne)
	}
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", auth, h.UpdateById)
	}

	// Delete operations
	if config.DelOne {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-one", auth, h.DeleteOne)
	}
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", auth, h.DeleteById)
	}

	// Other operations
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", auth, h.CountDocuments)
	}
	if config.Distinct {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/distinct", auth, h.Distinct)
	}
	if config.Upsert {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/upsert-one", auth, h.Upsert)
	}
	if config.Exists {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/exists", auth, h.DocumentExists)
	}
}

// RegisterFunc is one domain's route registration, called with the /api and
// /api/v1 groups.
type RegisterFunc func(base fiber.Router, v1 fiber.Router, r *Router) error

// SetupRoutes mounts every domain's routes. Domains pass their Register
// function here from cmd/server, which avoids import cycles between domain
// routers.
func SetupRoutes(app *fiber.App, auth fiber.Handler, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	base := app.Group(prefix.Base)
	v1 := app.Group(prefix.V1)
	r := NewRouter(app, auth)
	for _, reg := range regs {
		if err := reg(base, v1, r); err != nil {
			return err
		}
	}
	return nil
}

// Package router registers the tag routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	etiquetahdl "github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/handler"
	apirouter "github.com/GreenD94/ladingburger-sub002/internal/api/router"
)

// Register mounts the tag routes, all behind the admin middleware.
func Register(etiquetas *etiquetahdl.EtiquetaHandler) apirouter.RegisterFunc {
	return func(base fiber.Router, v1 fiber.Router, r *apirouter.Router) error {
		r.RegisterCRUDRoutes(v1, "/etiquetas", etiquetas, apirouter.ReadWriteConfig)
		return nil
	}
}

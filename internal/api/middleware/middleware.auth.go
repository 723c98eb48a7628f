// Package middleware contains the request middleware shared by every
// protected route.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	authsvc "github.com/GreenD94/ladingburger-sub002/internal/api/auth/service"
	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/config"
)

// AuthManager resolves session tokens to admin accounts. One instance is
// built at bootstrap and shared by all protected routes.
type AuthManager struct {
	adminService *authsvc.AdminService
	cfg          *config.Configuration
}

// NewAuthManager wires the manager over the injected admin service.
func NewAuthManager(adminService *authsvc.AdminService, cfg *config.Configuration) *AuthManager {
	return &AuthManager{
		adminService: adminService,
		cfg:          cfg,
	}
}

// RequireAdmin returns the middleware protecting back-office routes. It
// reads the session cookie (falling back to an Authorization Bearer header),
// verifies the token and re-fetches the admin record; a missing record,
// disabled account or decode failure fails closed with 401. The admin id is
// stored in locals under "admin_id" for handlers and the audit log.
func (m *AuthManager) RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := m.extractToken(c)
		if token == "" {
			basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		admin, err := m.adminService.GetSessionAdmin(c.Context(), token)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		c.Locals("admin_id", admin.ID.Hex())
		c.Locals("admin_email", admin.Email)

		return c.Next()
	}
}

func (m *AuthManager) extractToken(c fiber.Ctx) string {
	if cookie := c.Cookies(m.cfg.SessionCookieName); cookie != "" {
		return cookie
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

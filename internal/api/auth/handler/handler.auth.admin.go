// Package handler exposes the auth HTTP endpoints: login, logout, session
// check and admin account management.
package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/GreenD94/ladingburger-sub002/config"
	"github.com/GreenD94/ladingburger-sub002/internal/api/auth/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/auth/models"
	authsvc "github.com/GreenD94/ladingburger-sub002/internal/api/auth/service"
	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// AdminHandler carries the generic CRUD endpoints for admins plus the
// session endpoints.
type AdminHandler struct {
	*basehdl.BaseHandler[models.Admin, dto.AdminCreateInput, dto.AdminUpdateInput]
	service *authsvc.AdminService
	cfg     *config.Configuration
}

// NewAdminHandler wires the handler.
func NewAdminHandler(service *authsvc.AdminService, cfg *config.Configuration) *AdminHandler {
	return &AdminHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Admin, dto.AdminCreateInput, dto.AdminUpdateInput](service),
		service:     service,
		cfg:         cfg,
	}
}

// HandleLogin verifies credentials and sets the session cookie.
func (h *AdminHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.AdminLoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		admin, token, err := h.service.Login(c.Context(), input)
		if err != nil {
			logger.LogAuth("login_failed", c, map[string]interface{}{"email": authsvc.NormalizeEmail(input.Email)})
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		h.setSessionCookie(c, token)
		logger.LogAuth("login", c, map[string]interface{}{"email": admin.Email})

		basehdl.HandleResponse(c, admin, nil)
		return nil
	})
}

// HandleLogout clears the session cookie. The token itself stays valid
// until expiry; there is no revocation list.
func (h *AdminHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		c.Cookie(&fiber.Cookie{
			Name:     h.cfg.SessionCookieName,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})

		logger.LogAuth("logout", c, nil)
		basehdl.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleMe returns the admin behind the current session. The auth
// middleware has already verified the token and re-fetched the record.
func (h *AdminHandler) HandleMe(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		adminID, _ := c.Locals("admin_id").(string)
		id, err := basesvc.EnsureObjectID(adminID)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		admin, err := h.service.FindOneById(c.Context(), id)
		basehdl.HandleResponse(c, admin, err)
		return nil
	})
}

// HandleRegister creates a new admin account (admin-only route).
func (h *AdminHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.AdminCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		admin, err := h.service.Register(c.Context(), input)
		if err == nil {
			logger.LogCRUD("create", "admin", admin.ID.Hex(), c, nil)
		}
		basehdl.HandleResponse(c, admin, err)
		return nil
	})
}

// HandleChangePassword rotates the caller's password.
func (h *AdminHandler) HandleChangePassword(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		adminID, _ := c.Locals("admin_id").(string)
		id, err := basesvc.EnsureObjectID(adminID)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input dto.AdminChangePasswordInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.ChangePassword(c.Context(), id, input)
		if err == nil {
			logger.LogAuth("password_change", c, nil)
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

func (h *AdminHandler) setSessionCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(h.cfg.SessionTTLHours) * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

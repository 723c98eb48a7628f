// Package service implements admin account management and session issuance.
package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/GreenD94/ladingburger-sub002/config"
	"github.com/GreenD94/ladingburger-sub002/internal/api/auth/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/auth/models"
	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/database"
	"github.com/GreenD94/ladingburger-sub002/internal/global"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
	"github.com/GreenD94/ladingburger-sub002/internal/utility"
)

// AdminService manages administrator accounts and login sessions.
type AdminService struct {
	basesvc.BaseServiceMongo[models.Admin]
	cfg *config.Configuration
}

// NewAdminService wires the service over the injected store.
func NewAdminService(store *database.Store, cfg *config.Configuration) *AdminService {
	return &AdminService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Admin](store.Collection(global.ColNames.Admins)),
		cfg:              cfg,
	}
}

// NormalizeEmail lowercases and trims an email so "Admin@X.com" and
// "admin@x.com" hit the same record.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new admin account. Emails differing only by case are
// duplicates.
func (s *AdminService) Register(ctx context.Context, input dto.AdminCreateInput) (models.Admin, error) {
	var zero models.Admin

	email := NormalizeEmail(input.Email)

	exists, err := s.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "ya existe un administrador con ese correo", common.StatusConflict, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	admin := models.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Name:         input.Name,
		IsEnabled:    true,
	}

	created, err := s.InsertOne(ctx, admin)
	if err != nil {
		return zero, err
	}

	logger.GetAppLogger().WithField("email", email).Info("Admin account created")
	return created, nil
}

// Login verifies credentials and returns the admin plus a signed session
// token. Every failure mode collapses into ErrInvalidCredentials so the
// response never reveals whether the email exists.
func (s *AdminService) Login(ctx context.Context, input dto.AdminLoginInput) (models.Admin, string, error) {
	var zero models.Admin

	email := NormalizeEmail(input.Email)

	admin, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return zero, "", common.ErrInvalidCredentials
	}

	if !admin.IsEnabled {
		return zero, "", common.ErrAdminDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return zero, "", common.ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.SessionTTLHours) * time.Hour
	token, err := utility.CreateToken(s.cfg.JwtSecret, admin.ID.Hex(), ttl)
	if err != nil {
		return zero, "", err
	}

	return admin, token, nil
}

// GetSessionAdmin resolves a session token to its admin record. Decode
// failure, a missing record or a disabled account all fail closed.
func (s *AdminService) GetSessionAdmin(ctx context.Context, token string) (models.Admin, error) {
	var zero models.Admin

	claims, err := utility.ParseToken(s.cfg.JwtSecret, token)
	if err != nil {
		return zero, err
	}

	adminID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return zero, common.ErrTokenInvalid
	}

	admin, err := s.FindOneById(ctx, adminID)
	if err != nil {
		return zero, common.ErrTokenInvalid
	}
	if !admin.IsEnabled {
		return zero, common.ErrAdminDisabled
	}

	return admin, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AdminService) ChangePassword(ctx context.Context, adminID primitive.ObjectID, input dto.AdminChangePasswordInput) error {
	admin, err := s.FindOneById(ctx, adminID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return common.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err.Error())
	}

	_, err = s.UpdateById(ctx, adminID, basesvc.UpdateData{
		Set: map[string]interface{}{"passwordHash": string(hash)},
	})
	return err
}

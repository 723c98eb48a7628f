package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/GreenD94/ladingburger-sub002/internal/api/auth/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/auth/models"
	basesvc "github.com/GreenD94/ladingburger-sub002/internal/api/base/service"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Admin@Saborea.local", "admin@saborea.local"},
		{"  admin@saborea.local  ", "admin@saborea.local"},
		{"ADMIN@SABOREA.LOCAL", "admin@saborea.local"},
		{"admin@saborea.local", "admin@saborea.local"},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Errorf("NormalizeEmail(%q) = %q, esperaba %q", tc.in, got, tc.want)
		}
	}
}

// fakeAdminBase keeps admins in memory, keyed by normalized email. Only the
// methods Register touches are implemented.
type fakeAdminBase struct {
	basesvc.BaseServiceMongo[models.Admin]
	byEmail map[string]models.Admin
}

func (f *fakeAdminBase) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	email, _ := filter.(bson.M)["email"].(string)
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeAdminBase) InsertOne(ctx context.Context, admin models.Admin) (models.Admin, error) {
	f.byEmail[admin.Email] = admin
	return admin, nil
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := &AdminService{BaseServiceMongo: &fakeAdminBase{byEmail: map[string]models.Admin{}}}
	ctx := context.Background()

	if _, err := svc.Register(ctx, dto.AdminCreateInput{
		Email:    "Gerente@Saborea.local",
		Password: "Secreta#2024",
		Name:     "Gerente",
	}); err != nil {
		t.Fatalf("el primer registro debe funcionar: %v", err)
	}

	_, err := svc.Register(ctx, dto.AdminCreateInput{
		Email:    "gerente@saborea.LOCAL",
		Password: "OtraClave#2024",
		Name:     "Impostor",
	})
	if err == nil {
		t.Fatal("un correo que sólo difiere en mayúsculas debe rechazarse")
	}

	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusConflict {
		t.Errorf("el duplicado debe responder conflicto, obtuve: %v", err)
	}
}

func TestNormalizeEmailFoldsDuplicates(t *testing.T) {
	// Dos registros que sólo difieren en mayúsculas deben chocar contra el
	// índice único después de normalizar.
	a := NormalizeEmail("Gerente@Saborea.local")
	b := NormalizeEmail("gerente@saborea.LOCAL")
	if a != b {
		t.Errorf("los correos normalizados deben coincidir: %q != %q", a, b)
	}
}

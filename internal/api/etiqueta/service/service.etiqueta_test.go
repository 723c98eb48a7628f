package service

import (
	"errors"
	"testing"

	"github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/dto"
	"github.com/GreenD94/ladingburger-sub002/internal/api/etiqueta/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

func systemTag() models.Etiqueta {
	return models.Etiqueta{
		Ref:             "nuevo",
		Name:            "Nuevo",
		IsEnabled:       true,
		IsSystemManaged: true,
		IsSystemCreated: true,
	}
}

func boolPtr(v bool) *bool { return &v }

func TestValidateTagUpdateRejectsRenamingSystemTag(t *testing.T) {
	err := ValidateTagUpdate(systemTag(), dto.EtiquetaUpdateInput{Name: "Recién llegado"})
	if !errors.Is(err, common.ErrSystemManaged) {
		t.Errorf("renombrar una etiqueta del sistema debe fallar con el error tipado, recibí %v", err)
	}
}

func TestValidateTagUpdateRejectsDisablingSystemTag(t *testing.T) {
	err := ValidateTagUpdate(systemTag(), dto.EtiquetaUpdateInput{IsEnabled: boolPtr(false)})
	if !errors.Is(err, common.ErrSystemManaged) {
		t.Errorf("deshabilitar una etiqueta del sistema debe fallar con el error tipado, recibí %v", err)
	}
}

func TestValidateTagUpdateAllowsColorOnSystemTag(t *testing.T) {
	if err := ValidateTagUpdate(systemTag(), dto.EtiquetaUpdateInput{Color: "#e91e63"}); err != nil {
		t.Errorf("cambiar el color de una etiqueta del sistema debe permitirse: %v", err)
	}
}

func TestValidateTagUpdateAllowsSameNameOnSystemTag(t *testing.T) {
	if err := ValidateTagUpdate(systemTag(), dto.EtiquetaUpdateInput{Name: "Nuevo"}); err != nil {
		t.Errorf("repetir el mismo nombre no es un renombre: %v", err)
	}
}

func TestValidateTagUpdateAllowsEverythingOnRegularTag(t *testing.T) {
	tag := models.Etiqueta{Ref: "mayorista", Name: "Mayorista", IsEnabled: true}
	input := dto.EtiquetaUpdateInput{Name: "Mayoristas", IsEnabled: boolPtr(false)}
	if err := ValidateTagUpdate(tag, input); err != nil {
		t.Errorf("una etiqueta normal se edita libremente: %v", err)
	}
}

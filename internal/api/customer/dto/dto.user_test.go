package dto

import (
	"testing"

	"github.com/GreenD94/ladingburger-sub002/internal/global"
)

func TestUserTagInputValidation(t *testing.T) {
	global.InitValidator()

	valid := UserTagInput{PhoneNumber: "04141234567", Tag: "VIP"}
	if err := global.Validate.Struct(valid); err != nil {
		t.Fatalf("una etiqueta válida debe aceptarse: %v", err)
	}

	cases := []struct {
		name  string
		input UserTagInput
	}{
		{"sin teléfono", UserTagInput{Tag: "VIP"}},
		{"teléfono inválido", UserTagInput{PhoneNumber: "no-es-telefono", Tag: "VIP"}},
		{"sin etiqueta", UserTagInput{PhoneNumber: "04141234567"}},
		{"etiqueta con script", UserTagInput{PhoneNumber: "04141234567", Tag: "<script>x</script>"}},
	}
	for _, tc := range cases {
		if err := global.Validate.Struct(tc.input); err == nil {
			t.Errorf("%s: debería rechazarse", tc.name)
		}
	}
}

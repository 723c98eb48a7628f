package global

import "testing"

type phoneInput struct {
	Phone string `validate:"phone_number"`
}

type passwordInput struct {
	Password string `validate:"strong_password"`
}

type textInput struct {
	Text string `validate:"no_xss"`
}

func TestPhoneNumberValidator(t *testing.T) {
	InitValidator()

	valid := []string{"04141234567", "+584141234567", "1234567"}
	for _, phone := range valid {
		if err := Validate.Struct(phoneInput{Phone: phone}); err != nil {
			t.Errorf("%q debería ser válido: %v", phone, err)
		}
	}

	invalid := []string{"", "123", "0414-123-4567", "llámame", "12345678901234567"}
	for _, phone := range invalid {
		if err := Validate.Struct(phoneInput{Phone: phone}); err == nil {
			t.Errorf("%q debería ser inválido", phone)
		}
	}
}

func TestStrongPasswordValidator(t *testing.T) {
	InitValidator()

	valid := []string{"Abc12345", "secreta!9", "XyZ#2024"}
	for _, pw := range valid {
		if err := Validate.Struct(passwordInput{Password: pw}); err != nil {
			t.Errorf("%q debería aceptarse: %v", pw, err)
		}
	}

	invalid := []string{"corta1A", "solominusculas", "12345678", "MAYUSCULAS"}
	for _, pw := range invalid {
		if err := Validate.Struct(passwordInput{Password: pw}); err == nil {
			t.Errorf("%q debería rechazarse", pw)
		}
	}
}

func TestNoXSSValidator(t *testing.T) {
	InitValidator()

	if err := Validate.Struct(textInput{Text: "Hamburguesa con queso"}); err != nil {
		t.Errorf("texto normal rechazado: %v", err)
	}
	if err := Validate.Struct(textInput{Text: "<script>alert(1)</script>"}); err == nil {
		t.Error("un payload de script debe rechazarse")
	}
	if err := Validate.Struct(textInput{Text: "javascript:alert(1)"}); err == nil {
		t.Error("un uri javascript debe rechazarse")
	}
}

package service

import (
	"strings"
	"testing"

	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
)

func TestSanitizePhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"+58 414-123.4567", "584141234567"},
		{"04141234567", "04141234567"},
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := SanitizePhone(tc.in); got != tc.want {
			t.Errorf("SanitizePhone(%q) = %q, esperaba %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildLinkEscapesMessage(t *testing.T) {
	link, err := BuildLink("+584141234567", "¡Hola! Tu pedido está listo & esperando")
	if err != nil {
		t.Fatalf("BuildLink: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/584141234567?text=") {
		t.Errorf("prefijo inesperado: %q", link)
	}
	if strings.ContainsAny(strings.TrimPrefix(link, "https://wa.me/584141234567?text="), " &¡á") {
		t.Errorf("el mensaje debe ir escapado: %q", link)
	}
}

func TestBuildLinkRejectsEmptyPhone(t *testing.T) {
	if _, err := BuildLink("sin-digitos", "hola"); err == nil {
		t.Fatal("un teléfono sin dígitos debe fallar")
	}
}

func TestRenderMessageTemplates(t *testing.T) {
	order := models.Order{CustomerName: "María", TotalPrice: 12.5}

	for _, template := range []string{TemplateOrderConfirmed, TemplateOrderReady, TemplateOrderInTransit, TemplatePaymentReminder} {
		msg, err := RenderMessage(template, order)
		if err != nil {
			t.Errorf("RenderMessage(%q): %v", template, err)
			continue
		}
		if !strings.Contains(msg, "María") {
			t.Errorf("el mensaje debe saludar por nombre: %q", msg)
		}
	}

	msg, _ := RenderMessage(TemplateOrderConfirmed, order)
	if !strings.Contains(msg, "12.50") {
		t.Errorf("el total debe aparecer con dos decimales: %q", msg)
	}
}

func TestRenderMessageUnknownTemplate(t *testing.T) {
	if _, err := RenderMessage("algoRaro", models.Order{}); err == nil {
		t.Fatal("una plantilla desconocida debe fallar")
	}
}

func TestRenderMessageFallsBackToGenericName(t *testing.T) {
	msg, err := RenderMessage(TemplateOrderReady, models.Order{})
	if err != nil {
		t.Fatalf("RenderMessage: %v", err)
	}
	if !strings.Contains(msg, "cliente") {
		t.Errorf("sin nombre debe saludar como cliente: %q", msg)
	}
}

// Package service builds the WhatsApp deep links the back-office uses to
// message customers about their orders.
package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/GreenD94/ladingburger-sub002/config"
	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

// Message templates.
const (
	TemplateOrderConfirmed  = "orderConfirmed"
	TemplateOrderReady      = "orderReady"
	TemplateOrderInTransit  = "orderInTransit"
	TemplatePaymentReminder = "paymentReminder"
)

// WhatsAppService renders order notifications as wa.me links. Nothing is
// sent from the server: the operator opens the link and WhatsApp takes over.
type WhatsAppService struct {
	cfg *config.Configuration
}

// NewWhatsAppService wires the service.
func NewWhatsAppService(cfg *config.Configuration) *WhatsAppService {
	return &WhatsAppService{cfg: cfg}
}

// SanitizePhone strips everything but digits, as wa.me requires.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildLink renders a wa.me deep link for a phone and message. The message
// is query-escaped so emoji, accents and line breaks survive the URL.
func BuildLink(phone, message string) (string, error) {
	digits := SanitizePhone(phone)
	if digits == "" {
		return "", common.NewError(common.ErrCodeValidationInput, "Número de teléfono inválido", common.StatusBadRequest, phone)
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message)), nil
}

// RenderMessage fills a template with the order's details.
func RenderMessage(template string, order models.Order) (string, error) {
	name := order.CustomerName
	if name == "" {
		name = "cliente"
	}

	switch template {
	case TemplateOrderConfirmed:
		return fmt.Sprintf("¡Hola %s! Tu pedido en Saborea fue confirmado. Total: $%.2f. Te avisamos cuando esté listo.", name, order.TotalPrice), nil
	case TemplateOrderReady:
		return fmt.Sprintf("¡Hola %s! Tu pedido en Saborea está listo para retirar.", name), nil
	case TemplateOrderInTransit:
		return fmt.Sprintf("¡Hola %s! Tu pedido en Saborea va en camino.", name), nil
	case TemplatePaymentReminder:
		return fmt.Sprintf("Hola %s, te recordamos que tu pedido en Saborea por $%.2f está pendiente de pago.", name, order.TotalPrice), nil
	}

	return "", common.NewError(common.ErrCodeValidationInput, "Plantilla de mensaje desconocida", common.StatusBadRequest, template)
}

// LinkForOrder builds the wa.me link messaging the order's customer with
// the given template.
func (s *WhatsAppService) LinkForOrder(template string, order models.Order) (string, error) {
	message, err := RenderMessage(template, order)
	if err != nil {
		return "", err
	}
	return BuildLink(order.CustomerPhone, message)
}

// BusinessLink builds the wa.me link customers use to reach the restaurant.
func (s *WhatsAppService) BusinessLink(message string) (string, error) {
	return BuildLink(s.cfg.WhatsAppBusinessPhone, message)
}

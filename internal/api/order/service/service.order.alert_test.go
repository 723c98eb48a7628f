package service

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
)

var testThresholds = AlertThresholds{
	PaymentWaitingMinutes: 10,
	CookingDelayMinutes:   30,
	IssueUrgentMinutes:    30,
}

func orderAt(status models.OrderStatus, age time.Duration, now time.Time) models.Order {
	since := now.Add(-age).UnixMilli()
	return models.Order{
		ID:        primitive.NewObjectID(),
		Status:    status,
		CreatedAt: since,
		Logs: []models.OrderLog{{
			Status:    status,
			CreatedAt: since,
		}},
	}
}

func TestDeriveAlertsPaymentWaiting(t *testing.T) {
	now := time.Now()

	late := orderAt(models.StatusWaitingPayment, 11*time.Minute, now)
	alerts := DeriveAlerts([]models.Order{late}, testThresholds, now)
	if len(alerts) != 1 {
		t.Fatalf("11 minutos esperando pago debe generar alerta, recibí %d", len(alerts))
	}
	if alerts[0].Type != AlertPaymentWaiting || alerts[0].Severity != SeverityWarning {
		t.Errorf("alerta inesperada: %+v", alerts[0])
	}

	fresh := orderAt(models.StatusWaitingPayment, 9*time.Minute, now)
	if alerts := DeriveAlerts([]models.Order{fresh}, testThresholds, now); len(alerts) != 0 {
		t.Errorf("9 minutos esperando pago no debe generar alerta, recibí %d", len(alerts))
	}

	exact := orderAt(models.StatusWaitingPayment, 10*time.Minute, now)
	if alerts := DeriveAlerts([]models.Order{exact}, testThresholds, now); len(alerts) != 0 {
		t.Errorf("exactamente en el umbral no debe generar alerta")
	}
}

func TestDeriveAlertsPaymentFailedCountsAsWaiting(t *testing.T) {
	now := time.Now()
	failed := orderAt(models.StatusPaymentFailed, 15*time.Minute, now)

	alerts := DeriveAlerts([]models.Order{failed}, testThresholds, now)
	if len(alerts) != 1 || alerts[0].Type != AlertPaymentWaiting {
		t.Fatalf("PAYMENT_FAILED debe alertar como pago pendiente: %+v", alerts)
	}
}

func TestDeriveAlertsCookingUsesOrderPrepTime(t *testing.T) {
	now := time.Now()

	// Con 45 minutos declarados, 40 minutos en cocina todavía está a tiempo.
	slow := orderAt(models.StatusCooking, 40*time.Minute, now)
	slow.EstimatedPrepTime = 45
	if alerts := DeriveAlerts([]models.Order{slow}, testThresholds, now); len(alerts) != 0 {
		t.Errorf("dentro del tiempo declarado no debe alertar: %+v", alerts)
	}

	// Sin tiempo declarado aplica el umbral por defecto de 30.
	defaulted := orderAt(models.StatusCooking, 40*time.Minute, now)
	alerts := DeriveAlerts([]models.Order{defaulted}, testThresholds, now)
	if len(alerts) != 1 || alerts[0].Type != AlertCookingDelay {
		t.Fatalf("40 minutos sin tiempo declarado debe alertar: %+v", alerts)
	}
}

func TestDeriveAlertsIssueIsError(t *testing.T) {
	now := time.Now()
	issue := orderAt(models.StatusIssue, 31*time.Minute, now)

	alerts := DeriveAlerts([]models.Order{issue}, testThresholds, now)
	if len(alerts) != 1 {
		t.Fatalf("incidencia de 31 minutos debe alertar")
	}
	if alerts[0].Severity != SeverityError {
		t.Errorf("una incidencia vencida es severidad error, recibí %q", alerts[0].Severity)
	}
}

func TestDeriveAlertsOrdering(t *testing.T) {
	now := time.Now()

	oldWarning := orderAt(models.StatusWaitingPayment, 60*time.Minute, now)
	newWarning := orderAt(models.StatusWaitingPayment, 20*time.Minute, now)
	issue := orderAt(models.StatusIssue, 35*time.Minute, now)

	alerts := DeriveAlerts([]models.Order{newWarning, oldWarning, issue}, testThresholds, now)
	if len(alerts) != 3 {
		t.Fatalf("esperaba 3 alertas, recibí %d", len(alerts))
	}
	if alerts[0].Severity != SeverityError {
		t.Errorf("los errores van primero: %+v", alerts[0])
	}
	if alerts[1].OrderID != oldWarning.ID.Hex() {
		t.Errorf("dentro de la misma severidad va primero la más antigua")
	}
	if alerts[2].OrderID != newWarning.ID.Hex() {
		t.Errorf("la advertencia más reciente va última")
	}
}

func TestDeriveAlertsIgnoresHealthyStatuses(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderAt(models.StatusInTransit, 2*time.Hour, now),
		orderAt(models.StatusWaitingPickup, 2*time.Hour, now),
		orderAt(models.StatusCompleted, 2*time.Hour, now),
	}
	if alerts := DeriveAlerts(orders, testThresholds, now); len(alerts) != 0 {
		t.Errorf("estados sin regla de alerta no deben aparecer: %+v", alerts)
	}
}

func TestStatusSinceUsesLastMatchingLog(t *testing.T) {
	now := time.Now()
	created := now.Add(-2 * time.Hour).UnixMilli()
	cookingAt := now.Add(-5 * time.Minute).UnixMilli()

	order := models.Order{
		Status:    models.StatusCooking,
		CreatedAt: created,
		Logs: []models.OrderLog{
			{Status: models.StatusWaitingPayment, CreatedAt: created},
			{Status: models.StatusCooking, CreatedAt: cookingAt},
		},
	}

	// Acaba de entrar a cocina: la edad se mide desde el log, no desde la
	// creación de la orden.
	if alerts := DeriveAlerts([]models.Order{order}, testThresholds, now); len(alerts) != 0 {
		t.Errorf("5 minutos en cocina no debe alertar: %+v", alerts)
	}
}

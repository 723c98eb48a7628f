package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
)

// Alert severities, ordered. Errors sort before warnings on the board.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Alert types.
const (
	AlertPaymentWaiting = "payment_waiting"
	AlertCookingDelay   = "cooking_delay"
	AlertIssueUrgent    = "issue_urgent"
)

// OrderAlert is one row on the back-office alert board.
type OrderAlert struct {
	OrderID       string             `json:"orderId"`
	CustomerPhone string             `json:"customerPhone"`
	Status        models.OrderStatus `json:"status"`
	Type          string             `json:"type"`
	Severity      string             `json:"severity"`
	Message       string             `json:"message"`
	AgeMinutes    int64              `json:"ageMinutes"`
	SinceMillis   int64              `json:"sinceMillis"`
}

// AlertThresholds are the delay limits (minutes) before an order surfaces
// on the board.
type AlertThresholds struct {
	PaymentWaitingMinutes int64
	CookingDelayMinutes   int64
	IssueUrgentMinutes    int64
}

var severityRank = map[string]int{
	SeverityError:   0,
	SeverityWarning: 1,
	SeverityInfo:    2,
}

// statusSince returns the timestamp (millis) at which the order entered its
// current status, scanning the log from the end. Orders without a matching
// log entry fall back to their creation time.
func statusSince(order models.Order) int64 {
	for i := len(order.Logs) - 1; i >= 0; i-- {
		if order.Logs[i].Status == order.Status {
			return order.Logs[i].CreatedAt
		}
	}
	return order.CreatedAt
}

// DeriveAlerts computes the alert board from a snapshot of orders. The
// function is pure: it touches no clock and no database, so the cutoffs are
// exact and testable. Result ordering is severity first, then oldest first.
func DeriveAlerts(orders []models.Order, thresholds AlertThresholds, now time.Time) []OrderAlert {
	nowMillis := now.UnixMilli()
	alerts := make([]OrderAlert, 0)

	for _, order := range orders {
		since := statusSince(order)
		ageMinutes := (nowMillis - since) / int64(time.Minute/time.Millisecond)

		var alert OrderAlert
		switch order.Status {
		case models.StatusWaitingPayment, models.StatusPaymentFailed:
			if ageMinutes <= thresholds.PaymentWaitingMinutes {
				continue
			}
			alert = OrderAlert{
				Type:     AlertPaymentWaiting,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Pago pendiente desde hace %d minutos", ageMinutes),
			}

		case models.StatusCooking:
			limit := order.EstimatedPrepTime
			if limit <= 0 {
				limit = thresholds.CookingDelayMinutes
			}
			if ageMinutes <= limit {
				continue
			}
			alert = OrderAlert{
				Type:     AlertCookingDelay,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("En cocina desde hace %d minutos (límite %d)", ageMinutes, limit),
			}

		case models.StatusIssue:
			if ageMinutes <= thresholds.IssueUrgentMinutes {
				continue
			}
			alert = OrderAlert{
				Type:     AlertIssueUrgent,
				Severity: SeverityError,
				Message:  fmt.Sprintf("Incidencia sin resolver desde hace %d minutos", ageMinutes),
			}

		default:
			continue
		}

		alert.OrderID = order.ID.Hex()
		alert.CustomerPhone = order.CustomerPhone
		alert.Status = order.Status
		alert.AgeMinutes = ageMinutes
		alert.SinceMillis = since
		alerts = append(alerts, alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if severityRank[alerts[i].Severity] != severityRank[alerts[j].Severity] {
			return severityRank[alerts[i].Severity] < severityRank[alerts[j].Severity]
		}
		return alerts[i].SinceMillis < alerts[j].SinceMillis
	})

	return alerts
}

// Alerts loads the active orders and derives the alert board with the
// configured thresholds.
func (s *OrderService) Alerts(ctx context.Context) ([]OrderAlert, error) {
	orders, err := s.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	thresholds := AlertThresholds{
		PaymentWaitingMinutes: int64(s.cfg.AlertPaymentWaitingMinutes),
		CookingDelayMinutes:   int64(s.cfg.AlertCookingDelayMinutes),
		IssueUrgentMinutes:    int64(s.cfg.AlertIssueUrgentMinutes),
	}

	return DeriveAlerts(orders, thresholds, time.Now()), nil
}

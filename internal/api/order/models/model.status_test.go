package models

import "testing"

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.IsValid() {
			t.Errorf("estado %q debería ser válido", s)
		}
	}
	if OrderStatus("DELIVERED").IsValid() {
		t.Error("un estado fuera del conjunto no puede ser válido")
	}
	if OrderStatus("").IsValid() {
		t.Error("el estado vacío no puede ser válido")
	}
}

func TestTerminalStatuses(t *testing.T) {
	terminal := map[OrderStatus]bool{
		StatusCompleted: true,
		StatusCancelled: true,
		StatusRefunded:  true,
	}
	for _, s := range AllStatuses {
		if s.IsTerminal() != terminal[s] {
			t.Errorf("IsTerminal(%q) = %v, esperaba %v", s, s.IsTerminal(), terminal[s])
		}
	}
}

func TestCompletedOnlyFromTransitOrPickup(t *testing.T) {
	for _, s := range AllStatuses {
		can := s.CanTransitionTo(StatusCompleted)
		want := s == StatusInTransit || s == StatusWaitingPickup
		if can != want {
			t.Errorf("%q -> COMPLETED = %v, esperaba %v", s, can, want)
		}
	}
}

func TestCancelledAndRefundedAreDeadEnds(t *testing.T) {
	for _, from := range []OrderStatus{StatusCancelled, StatusRefunded} {
		for _, to := range AllStatuses {
			if from.CanTransitionTo(to) {
				t.Errorf("%q es terminal pero permite transición a %q", from, to)
			}
		}
	}
}

func TestCompletedCanOnlyBeRefunded(t *testing.T) {
	for _, to := range AllStatuses {
		can := StatusCompleted.CanTransitionTo(to)
		if can != (to == StatusRefunded) {
			t.Errorf("COMPLETED -> %q = %v", to, can)
		}
	}
}

func TestWaitingPaymentTransitions(t *testing.T) {
	allowed := map[OrderStatus]bool{
		StatusPaymentFailed: true,
		StatusCooking:       true,
		StatusCancelled:     true,
	}
	for _, to := range AllStatuses {
		if StatusWaitingPayment.CanTransitionTo(to) != allowed[to] {
			t.Errorf("WAITING_PAYMENT -> %q = %v, esperaba %v", to, !allowed[to], allowed[to])
		}
	}
}

func TestPaymentStatusName(t *testing.T) {
	if PaymentPaid.Name() != "Pago confirmado" {
		t.Errorf("nombre inesperado para PAID: %q", PaymentPaid.Name())
	}
	if PaymentStatus("OTRO").Name() != "OTRO" {
		t.Error("un estado desconocido debe devolver su valor crudo")
	}
}

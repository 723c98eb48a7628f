package service

import (
	"errors"
	"testing"

	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

func TestValidateTransitionAllowsLegalMoves(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
	}{
		{models.StatusWaitingPayment, models.StatusCooking},
		{models.StatusWaitingPayment, models.StatusPaymentFailed},
		{models.StatusPaymentFailed, models.StatusWaitingPayment},
		{models.StatusCooking, models.StatusInTransit},
		{models.StatusCooking, models.StatusWaitingPickup},
		{models.StatusInTransit, models.StatusCompleted},
		{models.StatusWaitingPickup, models.StatusCompleted},
		{models.StatusIssue, models.StatusRefunded},
		{models.StatusCompleted, models.StatusRefunded},
	}
	for _, tc := range cases {
		if err := ValidateTransition(tc.from, tc.to); err != nil {
			t.Errorf("%s -> %s debería permitirse: %v", tc.from, tc.to, err)
		}
	}
}

func TestValidateTransitionRejectsIllegalMoves(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
	}{
		{models.StatusWaitingPayment, models.StatusCompleted},
		{models.StatusCooking, models.StatusCompleted},
		{models.StatusCancelled, models.StatusCooking},
		{models.StatusRefunded, models.StatusWaitingPayment},
		{models.StatusCompleted, models.StatusCooking},
	}
	for _, tc := range cases {
		err := ValidateTransition(tc.from, tc.to)
		if err == nil {
			t.Errorf("%s -> %s debería rechazarse", tc.from, tc.to)
			continue
		}
		if !errors.Is(err, common.ErrInvalidState) {
			t.Errorf("%s -> %s debe devolver el error de estado tipado, recibí %v", tc.from, tc.to, err)
		}
	}
}

func TestValidateTransitionRejectsUnknownStatus(t *testing.T) {
	err := ValidateTransition(models.StatusCooking, models.OrderStatus("READY"))
	if err == nil {
		t.Fatal("un estado desconocido debe rechazarse")
	}
	if errors.Is(err, common.ErrInvalidState) {
		t.Error("un estado desconocido es un error de validación, no de transición")
	}
}

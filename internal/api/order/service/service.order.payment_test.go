package service

import (
	"testing"

	"github.com/GreenD94/ladingburger-sub002/internal/api/order/models"
)

func TestShouldLogPaid(t *testing.T) {
	cases := []struct {
		current models.PaymentStatus
		want    bool
	}{
		{models.PaymentPending, true},
		{models.PaymentFailed, true},
		{models.PaymentRefunded, true},
		// Reconfirmar una orden pagada no duplica el historial.
		{models.PaymentPaid, false},
	}
	for _, tc := range cases {
		if got := ShouldLogPaid(tc.current); got != tc.want {
			t.Errorf("ShouldLogPaid(%q) = %v, esperaba %v", tc.current, got, tc.want)
		}
	}
}
